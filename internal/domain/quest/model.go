package quest

import "time"

// Map is one saved quest map. Cells is the serialized cell array as the
// editor script produced it; the server never interprets it.
type Map struct {
	ID       int64
	Title    string
	Author   string
	Story    string
	Notes    string
	WMonster string
	Cells    string
	Date     time.Time
}

// Summary is the load-screen listing entry.
type Summary struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// SaveInput mirrors the editor's save payload.
type SaveInput struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Story    string `json:"story"`
	Notes    string `json:"notes"`
	WMonster string `json:"wm"`
	Cells    string `json:"cells"`
}
