package demomode

import (
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteStore persists flag values in the settings table created by the
// schema migrations.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an open database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Load reads the value stored under key.
func (s *SQLiteStore) Load(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load setting %q: %w", key, err)
	}
	return value, true, nil
}

// Save upserts the value stored under key.
func (s *SQLiteStore) Save(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to save setting %q: %w", key, err)
	}
	return nil
}
