// Package board holds the fixed quest-board layout consumed by the map
// editor. The grid is static data: 19 rows of 26 cells, each cell a room or
// corridor square with the wall borders drawn around it.
package board

// CellType marks a square as part of a room or of the open corridor grid.
type CellType string

const (
	Room     CellType = "room"
	Corridor CellType = "corridor"
)

// Border flags, one per wall side of a cell.
const (
	BorderLeft   = "l"
	BorderRight  = "r"
	BorderTop    = "t"
	BorderBottom = "b"
)

// Cell is serialized into the editor page under the short wire keys the
// client script expects. Room number is reserved for future use and stays
// empty.
type Cell struct {
	Borders []string `json:"b"`
	Type    CellType `json:"t"`
	Room    string   `json:"r"`
}

// Layout returns the shared board grid. Callers must treat it as read-only.
func Layout() [][]Cell {
	return layout
}

func cell(t CellType, borders ...string) Cell {
	if borders == nil {
		borders = []string{}
	}
	return Cell{Borders: borders, Type: t, Room: ""}
}

var layout = [][]Cell{
	{
		cell(Corridor), cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor, "b"),
		cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor, "b"),
		cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor), cell(Corridor), cell(Corridor, "b"),
		cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor, "b"),
		cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor, "b"),
		cell(Corridor),
	},
	{
		cell(Corridor, "r"), cell(Room, "l", "t"), cell(Room, "t"), cell(Room, "t"), cell(Room, "t", "r"),
		cell(Room, "l", "t"), cell(Room, "t"), cell(Room, "t"), cell(Room, "t", "r"), cell(Room, "l", "t"),
		cell(Room, "t"), cell(Room, "t", "r"), cell(Corridor, "l"), cell(Corridor, "r"), cell(Room, "t", "l"),
		cell(Room, "t"), cell(Room, "t", "r"), cell(Room, "t", "l"), cell(Room, "t"), cell(Room, "t"),
		cell(Room, "t", "r"), cell(Room, "t", "l"), cell(Room, "t"), cell(Room, "t"), cell(Room, "r", "t"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"), cell(Room, "l"),
		cell(Room), cell(Room, "r"), cell(Corridor, "l"), cell(Corridor, "r"), cell(Room, "l"),
		cell(Room), cell(Room, "r"), cell(Room, "l"), cell(Room), cell(Room),
		cell(Room, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l", "b"), cell(Room, "b"), cell(Room, "b"), cell(Room, "b", "r"),
		cell(Room, "l", "b"), cell(Room, "b"), cell(Room, "b"), cell(Room, "b", "r"), cell(Room, "l"),
		cell(Room), cell(Room, "r"), cell(Corridor, "l"), cell(Corridor, "r"), cell(Room, "l"),
		cell(Room), cell(Room, "r"), cell(Room, "l"), cell(Room), cell(Room),
		cell(Room, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l", "t"), cell(Room, "t"), cell(Room, "t"), cell(Room, "t", "r"),
		cell(Room, "t", "l"), cell(Room, "t"), cell(Room, "t"), cell(Room, "t", "r"), cell(Room, "l"),
		cell(Room), cell(Room, "r"), cell(Corridor, "l"), cell(Corridor, "r"), cell(Room, "l"),
		cell(Room), cell(Room, "r"), cell(Room, "l", "b"), cell(Room, "b"), cell(Room, "b"),
		cell(Room, "b", "r"), cell(Room, "b", "l"), cell(Room, "b"), cell(Room, "b"), cell(Room, "b", "r"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"), cell(Room, "l", "b"),
		cell(Room, "b"), cell(Room, "r", "b"), cell(Corridor, "l"), cell(Corridor, "r"), cell(Room, "l", "b"),
		cell(Room, "b"), cell(Room, "b", "r"), cell(Room, "t", "l"), cell(Room, "t"), cell(Room, "t"),
		cell(Room, "t", "r"), cell(Room, "t", "l"), cell(Room, "t"), cell(Room, "t"), cell(Room, "r", "t"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"), cell(Corridor, "l", "t"),
		cell(Corridor, "t", "b"), cell(Corridor, "t", "b"), cell(Corridor, "b"), cell(Corridor, "b"), cell(Corridor, "b", "t"),
		cell(Corridor, "b", "t"), cell(Corridor, "r", "t"), cell(Room, "l"), cell(Room), cell(Room),
		cell(Room, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"), cell(Corridor, "r", "l"),
		cell(Room, "l", "t"), cell(Room, "t"), cell(Room, "t"), cell(Room, "t"), cell(Room, "t"),
		cell(Room, "t", "r"), cell(Corridor, "l", "r"), cell(Room, "l"), cell(Room), cell(Room),
		cell(Room, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l", "b"), cell(Room, "b"), cell(Room, "b"), cell(Room, "b", "r"),
		cell(Room, "l", "b"), cell(Room, "b"), cell(Room, "b"), cell(Room, "b", "r"), cell(Corridor, "r", "l"),
		cell(Room, "l"), cell(Room), cell(Room), cell(Room), cell(Room),
		cell(Room, "r"), cell(Corridor, "l", "r"), cell(Room, "l", "b"), cell(Room, "b"), cell(Room, "b"),
		cell(Room, "b", "r"), cell(Room, "b", "l"), cell(Room, "b"), cell(Room, "b"), cell(Room, "r", "b"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor), cell(Corridor, "t", "b"), cell(Corridor, "t", "b"), cell(Corridor, "t", "b"), cell(Corridor, "t", "b"),
		cell(Corridor, "t", "b"), cell(Corridor, "t", "b"), cell(Corridor, "t", "b"), cell(Corridor, "t", "b"), cell(Corridor, "r"),
		cell(Room, "l"), cell(Room), cell(Room), cell(Room), cell(Room),
		cell(Room, "r"), cell(Corridor, "l"), cell(Corridor, "t", "b"), cell(Corridor, "t", "b"), cell(Corridor, "t", "b"),
		cell(Corridor, "t", "b"), cell(Corridor, "t", "b"), cell(Corridor, "t", "b"), cell(Corridor, "t", "b"), cell(Corridor, "t", "b"),
		cell(Corridor),
	},
	{
		cell(Corridor, "r"), cell(Room, "t", "l"), cell(Room, "t"), cell(Room, "t"), cell(Room, "t", "r"),
		cell(Room, "t", "l"), cell(Room, "t", "r"), cell(Room, "t", "l"), cell(Room, "t", "r"), cell(Corridor, "r", "l"),
		cell(Room, "l"), cell(Room), cell(Room), cell(Room), cell(Room),
		cell(Room, "r"), cell(Corridor, "r", "l"), cell(Room, "t", "l"), cell(Room, "t"), cell(Room, "t"),
		cell(Room, "t", "r"), cell(Room, "t", "l"), cell(Room, "t"), cell(Room, "t"), cell(Room, "r", "t"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Room, "l"), cell(Room, "r"), cell(Room, "l"), cell(Room, "r"), cell(Corridor, "r", "l"),
		cell(Room, "b", "l"), cell(Room, "b"), cell(Room, "b"), cell(Room, "b"), cell(Room, "b"),
		cell(Room, "r", "b"), cell(Corridor, "r", "l"), cell(Room, "l"), cell(Room), cell(Room),
		cell(Room, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Room, "l", "b"), cell(Room, "r", "b"), cell(Room, "l", "b"), cell(Room, "r", "b"), cell(Corridor, "l", "b"),
		cell(Corridor, "b", "t"), cell(Corridor, "b", "t"), cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor, "t", "b"),
		cell(Corridor, "t", "b"), cell(Corridor, "b", "r"), cell(Room, "l", "b"), cell(Room), cell(Room),
		cell(Room, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "b", "l"), cell(Room, "b"), cell(Room, "b"), cell(Room, "r", "b"),
		cell(Room, "l", "t"), cell(Room, "t"), cell(Room, "t"), cell(Room, "t", "r"), cell(Room, "t", "l"),
		cell(Room, "t"), cell(Room, "t", "r"), cell(Corridor, "l"), cell(Corridor, "r"), cell(Room, "l", "t"),
		cell(Room, "t"), cell(Room, "t"), cell(Room, "t", "r"), cell(Room, "l", "b"), cell(Room, "b"),
		cell(Room, "r", "b"), cell(Room, "l", "b"), cell(Room, "b"), cell(Room, "b"), cell(Room, "r", "b"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l", "t"), cell(Room, "t"), cell(Room, "t"), cell(Room, "t", "r"),
		cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"), cell(Room, "l"),
		cell(Room), cell(Room, "r"), cell(Corridor, "l"), cell(Corridor, "r"), cell(Room, "l"),
		cell(Room), cell(Room), cell(Room, "r"), cell(Room, "t", "l"), cell(Room, "t"),
		cell(Room, "t", "r"), cell(Room, "l", "t"), cell(Room, "t"), cell(Room, "t"), cell(Room, "r", "t"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"), cell(Room, "l"),
		cell(Room), cell(Room, "r"), cell(Corridor, "l"), cell(Corridor, "r"), cell(Room, "l"),
		cell(Room), cell(Room), cell(Room, "r"), cell(Room, "l"), cell(Room),
		cell(Room, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"), cell(Room, "l"),
		cell(Room), cell(Room, "r"), cell(Corridor, "l"), cell(Corridor, "r"), cell(Room, "l"),
		cell(Room), cell(Room), cell(Room, "r"), cell(Room, "l"), cell(Room),
		cell(Room, "r"), cell(Room, "l"), cell(Room), cell(Room), cell(Room, "r"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor, "r"), cell(Room, "l", "b"), cell(Room, "b"), cell(Room, "b"), cell(Room, "b", "r"),
		cell(Room, "l", "b"), cell(Room, "b"), cell(Room, "b"), cell(Room, "b", "r"), cell(Room, "l", "b"),
		cell(Room, "b"), cell(Room, "b", "r"), cell(Corridor, "l"), cell(Corridor, "r"), cell(Room, "b", "l"),
		cell(Room, "b"), cell(Room, "b"), cell(Room, "b", "r"), cell(Room, "b", "l"), cell(Room, "b"),
		cell(Room, "b", "r"), cell(Room, "b", "l"), cell(Room, "b"), cell(Room, "b"), cell(Room, "b", "r"),
		cell(Corridor, "l"),
	},
	{
		cell(Corridor), cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor, "t"),
		cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor, "t"),
		cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor), cell(Corridor), cell(Corridor, "t"),
		cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor, "t"),
		cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor, "t"), cell(Corridor, "t"),
		cell(Corridor),
	},
}