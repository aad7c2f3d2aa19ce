package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
	"questbuilder/internal/domain/quest"
)

func NewQuestRepository(storage *Storage, log *slog.Logger) quest.Repository {
	return &questRepository{
		db:  storage,
		log: log,
	}
}

type questRepository struct {
	db  *Storage
	log *slog.Logger
}

func (r *questRepository) FindByKey(ctx context.Context, userID int64, title, author string) (int64, error) {
	var id int64
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id FROM maps WHERE user_id = ? AND title = ? AND author = ?`,
		userID, title, author).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, quest.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("find map by key: %w", err)
	}
	return id, nil
}

func (r *questRepository) Insert(ctx context.Context, userID int64, in quest.SaveInput, date time.Time) (int64, error) {
	res, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO maps (user_id, title, author, story, notes, wmonster, cells, date)
		 VALUES (?,?,?,?,?,?,?,?)`,
		userID, in.Title, in.Author, in.Story, in.Notes, in.WMonster, in.Cells, date)
	if err != nil {
		return 0, fmt.Errorf("insert map: %w", err)
	}
	return res.LastInsertId()
}

func (r *questRepository) UpdateContent(ctx context.Context, id int64, in quest.SaveInput, date time.Time) error {
	_, err := r.db.DB().ExecContext(ctx,
		`UPDATE maps SET story = ?, notes = ?, wmonster = ?, cells = ?, date = ? WHERE id = ?`,
		in.Story, in.Notes, in.WMonster, in.Cells, date, id)
	if err != nil {
		return fmt.Errorf("update map: %w", err)
	}
	return nil
}

func (r *questRepository) List(ctx context.Context, userID int64) ([]quest.Summary, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, title, author FROM maps WHERE user_id = ? ORDER BY date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query maps: %w", err)
	}
	defer rows.Close()

	maps := []quest.Summary{}
	for rows.Next() {
		var m quest.Summary
		if err := rows.Scan(&m.ID, &m.Title, &m.Author); err != nil {
			return nil, fmt.Errorf("scan map summary: %w", err)
		}
		maps = append(maps, m)
	}
	return maps, rows.Err()
}

func (r *questRepository) Find(ctx context.Context, userID int64, id int64) (*quest.Map, error) {
	var (
		m                             quest.Map
		story, notes, wmonster, cells sql.NullString
		date                          sql.NullTime
	)
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, title, author, story, notes, wmonster, cells, date
		 FROM maps WHERE id = ? AND user_id = ?`, id, userID).
		Scan(&m.ID, &m.Title, &m.Author, &story, &notes, &wmonster, &cells, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, quest.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan map: %w", err)
	}

	m.Story = story.String
	m.Notes = notes.String
	m.WMonster = wmonster.String
	m.Cells = cells.String
	m.Date = date.Time
	return &m, nil
}

func (r *questRepository) Delete(ctx context.Context, userID int64, id int64) error {
	if _, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM maps WHERE id = ? AND user_id = ?`, id, userID); err != nil {
		return fmt.Errorf("delete map: %w", err)
	}
	return nil
}

func (r *questRepository) ListCards(ctx context.Context, userID, mapID int64) ([]string, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT card_id FROM quest_cards WHERE user_id = ? AND map_id = ? ORDER BY created_at`,
		userID, mapID)
	if err != nil {
		return nil, fmt.Errorf("query quest cards: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan quest card: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *questRepository) AttachCard(ctx context.Context, userID, mapID int64, cardID string, createdAt int64) error {
	// drop any existing link first so re-attaching is idempotent
	if err := r.DetachCard(ctx, userID, mapID, cardID); err != nil {
		return err
	}
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO quest_cards (user_id, map_id, card_id, created_at) VALUES (?,?,?,?)`,
		userID, mapID, cardID, createdAt)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
		// card_id references cards(id); the card does not exist
		return quest.ErrUnknownCard
	}
	if err != nil {
		return fmt.Errorf("attach card: %w", err)
	}
	return nil
}

func (r *questRepository) DetachCard(ctx context.Context, userID, mapID int64, cardID string) error {
	_, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM quest_cards WHERE user_id = ? AND map_id = ? AND card_id = ?`,
		userID, mapID, cardID)
	if err != nil {
		return fmt.Errorf("detach card: %w", err)
	}
	return nil
}
