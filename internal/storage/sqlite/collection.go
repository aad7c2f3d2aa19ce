package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
	"questbuilder/internal/domain/collection"
)

func NewCollectionRepository(storage *Storage, log *slog.Logger) collection.Repository {
	return &collectionRepository{
		db:  storage,
		log: log,
	}
}

type collectionRepository struct {
	db  *Storage
	log *slog.Logger
}

func (r *collectionRepository) List(ctx context.Context, userID int64) ([]collection.Collection, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, description, card_ids, created_at, updated_at, schema_version
		 FROM collections WHERE user_id = ? ORDER BY name COLLATE NOCASE`, userID)
	if err != nil {
		return nil, fmt.Errorf("query collections: %w", err)
	}
	defer rows.Close()

	collections := []collection.Collection{}
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, *c)
	}
	return collections, rows.Err()
}

func (r *collectionRepository) Find(ctx context.Context, userID int64, id string) (*collection.Collection, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, description, card_ids, created_at, updated_at, schema_version
		 FROM collections WHERE id = ? AND user_id = ?`, id, userID)

	c, err := scanCollection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, collection.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *collectionRepository) Upsert(ctx context.Context, userID int64, c *collection.Collection) error {
	encoded, err := json.Marshal(c.CardIDs)
	if err != nil {
		return fmt.Errorf("encode card ids: %w", err)
	}

	_, err = r.db.DB().ExecContext(ctx,
		`INSERT OR REPLACE INTO collections (id, user_id, name, description, card_ids, created_at, updated_at, schema_version)
		 VALUES (?,?,?,?,?,?,?,?)`,
		c.ID, userID, c.Name, c.Description, string(encoded), c.CreatedAt, c.UpdatedAt, c.SchemaVersion)
	if err != nil {
		return fmt.Errorf("upsert collection: %w", err)
	}
	return nil
}

func (r *collectionRepository) UpdateFields(ctx context.Context, userID int64, id string, cols map[string]any, updatedAt int64) error {
	sets, args := setClause(cols, updatedAt)
	args = append(args, userID, id)

	_, err := r.db.DB().ExecContext(ctx,
		`UPDATE collections SET `+sets+` WHERE user_id = ? AND id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update collection: %w", err)
	}
	return nil
}

func (r *collectionRepository) Delete(ctx context.Context, userID int64, id string) error {
	if _, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM collections WHERE id = ? AND user_id = ?`, id, userID); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	return nil
}

func scanCollection(row rowScanner) (*collection.Collection, error) {
	var (
		c       collection.Collection
		cardIDs sql.NullString
	)
	err := row.Scan(&c.ID, &c.Name, &c.Description, &cardIDs, &c.CreatedAt, &c.UpdatedAt, &c.SchemaVersion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan collection: %w", err)
	}

	c.CardIDs = []string{}
	if cardIDs.Valid && cardIDs.String != "" {
		if err := json.Unmarshal([]byte(cardIDs.String), &c.CardIDs); err != nil {
			return nil, fmt.Errorf("decode card ids: %w", err)
		}
	}
	return &c, nil
}
