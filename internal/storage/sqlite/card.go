package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slog"
	"questbuilder/internal/domain/card"
)

const cardColumns = `id, template_id, status, name, name_lower, created_at, updated_at, schema_version,
	title, description, image_asset_id, image_asset_name, image_scale, image_offset_x, image_offset_y,
	image_original_width, image_original_height, hero_attack_dice, hero_defend_dice, hero_body_points,
	hero_mind_points, monster_movement_squares, monster_attack_dice, monster_defend_dice,
	monster_body_points, monster_mind_points, monster_icon_asset_id, monster_icon_asset_name,
	thumbnail_data_url`

func NewCardRepository(storage *Storage, log *slog.Logger) card.Repository {
	return &cardRepository{
		db:  storage,
		log: log,
	}
}

type cardRepository struct {
	db  *Storage
	log *slog.Logger
}

func (r *cardRepository) List(ctx context.Context, userID int64, f card.Filter) ([]card.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE user_id = ?`
	args := []any{userID}

	if f.TemplateID != "" {
		query += ` AND template_id = ?`
		args = append(args, f.TemplateID)
	}
	if f.Status != "" {
		query += ` AND status = ?`
		args = append(args, f.Status)
	}
	if f.Search != "" {
		query += ` AND name_lower LIKE ?`
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	cards := []card.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *c)
	}
	return cards, rows.Err()
}

func (r *cardRepository) Find(ctx context.Context, userID int64, id string) (*card.Card, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = ? AND user_id = ?`,
		id, userID)

	c, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, card.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *cardRepository) Upsert(ctx context.Context, userID int64, c *card.Card) error {
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT OR REPLACE INTO cards (
			id, user_id, template_id, status, name, name_lower, created_at, updated_at, schema_version,
			title, description, image_asset_id, image_asset_name, image_scale, image_offset_x, image_offset_y,
			image_original_width, image_original_height, hero_attack_dice, hero_defend_dice, hero_body_points,
			hero_mind_points, monster_movement_squares, monster_attack_dice, monster_defend_dice,
			monster_body_points, monster_mind_points, monster_icon_asset_id, monster_icon_asset_name,
			thumbnail_data_url
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		c.ID, userID, c.TemplateID, c.Status, c.Name, c.NameLower, c.CreatedAt, c.UpdatedAt, c.SchemaVersion,
		c.Title, c.Description, c.ImageAssetID, c.ImageAssetName, c.ImageScale, c.ImageOffsetX, c.ImageOffsetY,
		c.ImageOriginalWidth, c.ImageOriginalHeight, c.HeroAttackDice, c.HeroDefendDice, c.HeroBodyPoints,
		c.HeroMindPoints, c.MonsterMovementSquares, c.MonsterAttackDice, c.MonsterDefendDice,
		c.MonsterBodyPoints, c.MonsterMindPoints, c.MonsterIconAssetID, c.MonsterIconAssetName,
		c.ThumbnailDataURL)
	if err != nil {
		return fmt.Errorf("upsert card: %w", err)
	}
	return nil
}

func (r *cardRepository) UpdateFields(ctx context.Context, userID int64, id string, cols map[string]any, updatedAt int64) error {
	// column names come from the domain's fixed field table, never from the
	// payload itself
	sets, args := setClause(cols, updatedAt)
	args = append(args, userID, id)

	_, err := r.db.DB().ExecContext(ctx,
		`UPDATE cards SET `+sets+` WHERE user_id = ? AND id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update card: %w", err)
	}
	return nil
}

func (r *cardRepository) Delete(ctx context.Context, userID int64, id string) error {
	if _, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM cards WHERE id = ? AND user_id = ?`, id, userID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	return nil
}

func (r *cardRepository) DeleteMany(ctx context.Context, userID int64, ids []string) (int64, error) {
	query, args := bulkDelete("cards", userID, ids)
	res, err := r.db.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete cards: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*card.Card, error) {
	var c card.Card
	err := row.Scan(
		&c.ID, &c.TemplateID, &c.Status, &c.Name, &c.NameLower, &c.CreatedAt, &c.UpdatedAt, &c.SchemaVersion,
		&c.Title, &c.Description, &c.ImageAssetID, &c.ImageAssetName, &c.ImageScale, &c.ImageOffsetX, &c.ImageOffsetY,
		&c.ImageOriginalWidth, &c.ImageOriginalHeight, &c.HeroAttackDice, &c.HeroDefendDice, &c.HeroBodyPoints,
		&c.HeroMindPoints, &c.MonsterMovementSquares, &c.MonsterAttackDice, &c.MonsterDefendDice,
		&c.MonsterBodyPoints, &c.MonsterMindPoints, &c.MonsterIconAssetID, &c.MonsterIconAssetName,
		&c.ThumbnailDataURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan card: %w", err)
	}
	return &c, nil
}

// setClause renders "col = ?, ... , updated_at = ?" with matching args,
// sorted for deterministic SQL.
func setClause(cols map[string]any, updatedAt int64) (string, []any) {
	keys := make([]string, 0, len(cols))
	for k := range cols {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys)+1)
	args := make([]any, 0, len(keys)+1)
	for _, k := range keys {
		sets = append(sets, k+" = ?")
		args = append(args, cols[k])
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, updatedAt)

	return strings.Join(sets, ", "), args
}

// bulkDelete renders an owner-scoped IN (...) delete for the given table.
func bulkDelete(table string, userID int64, ids []string) (string, []any) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, 0, len(ids)+1)
	args = append(args, userID)
	for _, id := range ids {
		args = append(args, id)
	}
	return `DELETE FROM ` + table + ` WHERE user_id = ? AND id IN (` + placeholders + `)`, args
}
