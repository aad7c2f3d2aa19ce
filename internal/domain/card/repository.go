package card

import "context"

type Repository interface {
	List(ctx context.Context, userID int64, f Filter) ([]Card, error)
	Find(ctx context.Context, userID int64, id string) (*Card, error)
	// Upsert inserts or fully replaces the row with c.ID for this user.
	Upsert(ctx context.Context, userID int64, c *Card) error
	// UpdateFields writes only the given columns plus updated_at.
	UpdateFields(ctx context.Context, userID int64, id string, cols map[string]any, updatedAt int64) error
	Delete(ctx context.Context, userID int64, id string) error
	DeleteMany(ctx context.Context, userID int64, ids []string) (int64, error)
}
