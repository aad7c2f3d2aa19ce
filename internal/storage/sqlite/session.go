package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
	"questbuilder/internal/domain/session"
)

func NewSessionRepository(storage *Storage, log *slog.Logger) session.Repository {
	return &sessionRepository{
		db:  storage,
		log: log,
	}
}

type sessionRepository struct {
	db  *Storage
	log *slog.Logger
}

func (r *sessionRepository) Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO sessions (user_id, token_hash, expires_at) VALUES (?, ?, ?)`,
		userID, tokenHash, expiresAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Validate(ctx context.Context, tokenHash string) (int64, error) {
	var userID int64
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT user_id FROM sessions WHERE token_hash = ? AND expires_at > ?`,
		tokenHash, time.Now()).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, session.ErrInvalidSession
	}
	if err != nil {
		return 0, fmt.Errorf("query session: %w", err)
	}
	return userID, nil
}

func (r *sessionRepository) Delete(ctx context.Context, tokenHash string) error {
	if _, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM sessions WHERE token_hash = ?`, tokenHash); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
