package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
	"questbuilder/internal/domain/asset"
)

func NewAssetRepository(storage *Storage, log *slog.Logger) asset.Repository {
	return &assetRepository{
		db:  storage,
		log: log,
	}
}

type assetRepository struct {
	db  *Storage
	log *slog.Logger
}

func (r *assetRepository) List(ctx context.Context, userID int64) ([]asset.Asset, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, mime_type, width, height, created_at
		 FROM assets WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer rows.Close()

	assets := []asset.Asset{}
	for rows.Next() {
		var a asset.Asset
		if err := rows.Scan(&a.ID, &a.Name, &a.MimeType, &a.Width, &a.Height, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *assetRepository) Find(ctx context.Context, userID int64, id string) (*asset.Asset, error) {
	var a asset.Asset
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, mime_type, width, height, created_at
		 FROM assets WHERE id = ? AND user_id = ?`, id, userID).
		Scan(&a.ID, &a.Name, &a.MimeType, &a.Width, &a.Height, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, asset.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan asset: %w", err)
	}
	return &a, nil
}

func (r *assetRepository) FindBlob(ctx context.Context, userID int64, id string) (*asset.Blob, error) {
	var b asset.Blob
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT name, mime_type, blob FROM assets WHERE id = ? AND user_id = ?`, id, userID).
		Scan(&b.Name, &b.MimeType, &b.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, asset.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan asset blob: %w", err)
	}
	return &b, nil
}

func (r *assetRepository) Upsert(ctx context.Context, userID int64, a *asset.Asset, data []byte) error {
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT OR REPLACE INTO assets (id, user_id, name, mime_type, width, height, created_at, blob)
		 VALUES (?,?,?,?,?,?,?,?)`,
		a.ID, userID, a.Name, a.MimeType, a.Width, a.Height, a.CreatedAt, data)
	if err != nil {
		return fmt.Errorf("upsert asset: %w", err)
	}
	return nil
}

func (r *assetRepository) DeleteMany(ctx context.Context, userID int64, ids []string) (int64, error) {
	query, args := bulkDelete("assets", userID, ids)
	res, err := r.db.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete assets: %w", err)
	}
	return res.RowsAffected()
}
