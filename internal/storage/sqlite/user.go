package sqlite

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
	"questbuilder/internal/domain/user"
)

func NewUserRepository(storage *Storage, log *slog.Logger) user.Repository {
	return &userRepository{
		db:  storage,
		log: log,
	}
}

type userRepository struct {
	db  *Storage
	log *slog.Logger
}

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	res, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO users (username, hash) VALUES (?, ?)`,
		username, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) ([]user.User, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, username, hash FROM users WHERE username = ?`,
		username)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Hash); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
