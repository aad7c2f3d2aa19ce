// Package sqlite is the storage layer: one embedded database holding users,
// sessions, maps and the card-builder tables. Repositories here implement
// the domain repository interfaces with raw parameterized SQL.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Storage struct {
	db *sql.DB
}

func Open(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// single connection keeps sqlite writes serialized
	db.SetMaxOpenConns(1)

	storage := &Storage{db: db}
	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return storage, nil
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// initTables creates the whole schema idempotently; there is no migration
// machinery beyond this.
func (s *Storage) initTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
			username TEXT UNIQUE NOT NULL,
			hash TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
			user_id INTEGER NOT NULL,
			token_hash TEXT UNIQUE NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS maps (
			id INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
			user_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			story TEXT,
			notes TEXT,
			wmonster TEXT,
			cells TEXT,
			date TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS assets (
			id TEXT PRIMARY KEY NOT NULL,
			user_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			mime_type TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			created_at INTEGER NOT NULL,
			blob BLOB NOT NULL,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS cards (
			id TEXT PRIMARY KEY NOT NULL,
			user_id INTEGER NOT NULL,
			template_id TEXT NOT NULL,
			status TEXT NOT NULL,
			name TEXT NOT NULL,
			name_lower TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL,
			schema_version INTEGER NOT NULL,
			title TEXT,
			description TEXT,
			image_asset_id TEXT,
			image_asset_name TEXT,
			image_scale REAL,
			image_offset_x REAL,
			image_offset_y REAL,
			image_original_width REAL,
			image_original_height REAL,
			hero_attack_dice INTEGER,
			hero_defend_dice INTEGER,
			hero_body_points INTEGER,
			hero_mind_points INTEGER,
			monster_movement_squares INTEGER,
			monster_attack_dice INTEGER,
			monster_defend_dice INTEGER,
			monster_body_points INTEGER,
			monster_mind_points INTEGER,
			monster_icon_asset_id TEXT,
			monster_icon_asset_name TEXT,
			thumbnail_data_url TEXT,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS collections (
			id TEXT PRIMARY KEY NOT NULL,
			user_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			card_ids TEXT,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL,
			schema_version INTEGER NOT NULL,
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE TABLE IF NOT EXISTS quest_cards (
			id INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
			user_id INTEGER NOT NULL,
			map_id INTEGER NOT NULL,
			card_id TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			FOREIGN KEY(user_id) REFERENCES users(id),
			FOREIGN KEY(map_id) REFERENCES maps(id),
			FOREIGN KEY(card_id) REFERENCES cards(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_token ON sessions(token_hash);`,
		`CREATE INDEX IF NOT EXISTS idx_cards_user_name_lower ON cards(user_id, name_lower);`,
		`CREATE INDEX IF NOT EXISTS idx_cards_user_template_status ON cards(user_id, template_id, status);`,
		`CREATE INDEX IF NOT EXISTS idx_assets_user_created_at ON assets(user_id, created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_collections_user_name ON collections(user_id, name);`,
		`CREATE INDEX IF NOT EXISTS idx_quest_cards_user_map ON quest_cards(user_id, map_id);`,
	}

	for i, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("schema stmt %d: %w", i, err)
		}
	}
	return nil
}
