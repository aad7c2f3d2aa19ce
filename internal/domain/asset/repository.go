package asset

import "context"

type Repository interface {
	List(ctx context.Context, userID int64) ([]Asset, error)
	Find(ctx context.Context, userID int64, id string) (*Asset, error)
	FindBlob(ctx context.Context, userID int64, id string) (*Blob, error)
	Upsert(ctx context.Context, userID int64, a *Asset, data []byte) error
	DeleteMany(ctx context.Context, userID int64, ids []string) (int64, error)
}
