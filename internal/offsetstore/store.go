// Package offsetstore persists the last confirmed polling offset so a
// restarted bot does not re-process updates it already handled.
package offsetstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver registration
)

const defaultBusyTimeout = 5000 // milliseconds

// Store is a SQLite-backed offset store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path.
//
// The database is created with WAL mode, a 5 s busy timeout, and a
// single connection (SQLite serialises writes).
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("offsetstore: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("offsetstore: open %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	ctx := context.Background()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("offsetstore: enable WAL: %w", err)
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout=%d", defaultBusyTimeout)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("offsetstore: set busy_timeout: %w", err)
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS polling_offset (
		id     INTEGER PRIMARY KEY CHECK (id = 1),
		offset INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("offsetstore: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Load returns the persisted offset, or 0 if none has been saved yet.
func (s *Store) Load(ctx context.Context) (int64, error) {
	var offset int64
	err := s.db.QueryRowContext(ctx, "SELECT offset FROM polling_offset WHERE id = 1").Scan(&offset)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("offsetstore: load: %w", err)
	}
	return offset, nil
}

// Save persists the offset, replacing any previous value.
func (s *Store) Save(ctx context.Context, offset int64) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO polling_offset (id, offset) VALUES (1, ?)", offset)
	if err != nil {
		return fmt.Errorf("offsetstore: save: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
