package sqlitestore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mindtrackhq/mindtrack/internal/models"
)

// Store implements storage.Provider over a single-file SQLite database. It
// mirrors the local blob store behind the same interface: newest-first
// ordering, wholesale replacement on update, and no-op mutations for absent
// ids.
type Store struct {
	path string
	db   *sql.DB
}

func New(path string) *Store {
	return &Store{
		path: path,
	}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS mood_entries (
		id INTEGER PRIMARY KEY,
		mood INTEGER NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		activities TEXT NOT NULL DEFAULT '[]',
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		created_at TEXT NOT NULL,
		is_favorite INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS trigger_entries (
		id INTEGER PRIMARY KEY,
		description TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		intensity INTEGER NOT NULL,
		coping_strategy TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		created_at TEXT NOT NULL,
		is_favorite INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS trigger_categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		keywords TEXT NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE IF NOT EXISTS gratitude_entries (
		id INTEGER PRIMARY KEY,
		text TEXT NOT NULL,
		date TEXT NOT NULL,
		created_at TEXT NOT NULL,
		is_favorite INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		target_date TEXT NOT NULL DEFAULT '',
		progress INTEGER NOT NULL DEFAULT 0,
		steps TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		completed_at TEXT,
		is_favorite INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS exercise_history (
		id INTEGER PRIMARY KEY,
		technique_id TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		duration_sec INTEGER NOT NULL DEFAULT 0,
		extra TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		is_favorite INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS exercise_favorites (
		technique_id TEXT PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS exercise_counts (
		technique_id TEXT PRIMARY KEY,
		count INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS vault_entries (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		is_favorite INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS vault_categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		keywords TEXT NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := s.SaveSettings(models.DefaultSettings()); err != nil {
		return fmt.Errorf("failed to save default settings: %w", err)
	}
	for _, c := range models.DefaultTriggerCategories() {
		if err := s.AddTriggerCategory(c); err != nil {
			return fmt.Errorf("failed to seed trigger categories: %w", err)
		}
	}
	for _, c := range models.DefaultVaultCategories() {
		if err := s.AddVaultCategory(c); err != nil {
			return fmt.Errorf("failed to seed vault categories: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'mindtrack init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Keep the schema current; all statements are idempotent
	return s.createSchema()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) createSchema() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) GetDataPath() string {
	return s.path
}
