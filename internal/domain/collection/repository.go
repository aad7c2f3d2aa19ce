package collection

import "context"

type Repository interface {
	// List returns the caller's collections ordered by name, case-insensitive.
	List(ctx context.Context, userID int64) ([]Collection, error)
	Find(ctx context.Context, userID int64, id string) (*Collection, error)
	Upsert(ctx context.Context, userID int64, c *Collection) error
	UpdateFields(ctx context.Context, userID int64, id string, cols map[string]any, updatedAt int64) error
	Delete(ctx context.Context, userID int64, id string) error
}
