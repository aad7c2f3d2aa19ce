package user

import "context"

type Repository interface {
	Create(ctx context.Context, username, passwordHash string) (int64, error)
	// FindByUsername does an exact, case-sensitive match and returns every
	// row that matches; callers decide what a non-single result means.
	FindByUsername(ctx context.Context, username string) ([]User, error)
}
