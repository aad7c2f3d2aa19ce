package quest

import (
	"context"
	"time"
)

type Repository interface {
	// FindByKey resolves the (user, title, author) triple to a map id; the
	// triple is the upsert key for saves.
	FindByKey(ctx context.Context, userID int64, title, author string) (int64, error)
	Insert(ctx context.Context, userID int64, in SaveInput, date time.Time) (int64, error)
	// UpdateContent overwrites story/notes/wmonster/cells/date; title and
	// author stay as they are, they identify the row.
	UpdateContent(ctx context.Context, id int64, in SaveInput, date time.Time) error
	List(ctx context.Context, userID int64) ([]Summary, error)
	Find(ctx context.Context, userID int64, id int64) (*Map, error)
	Delete(ctx context.Context, userID int64, id int64) error

	// quest_cards join rows.
	ListCards(ctx context.Context, userID, mapID int64) ([]string, error)
	AttachCard(ctx context.Context, userID, mapID int64, cardID string, createdAt int64) error
	DetachCard(ctx context.Context, userID, mapID int64, cardID string) error
}
