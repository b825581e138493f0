// Package store persists timer state in SQLite: the committed
// configuration document, completed-set history, and the outbound event
// log. Everything here is fire-and-forget from the engine's point of
// view; a storage failure never stalls a phase transition.
package store

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &OpError{Op: "open", Resource: "database", Err: err}
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &OpError{Op: "open", Resource: "database", Err: err}
	}
	s := &Store{db: db}
	if err := s.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS sets (
			id TEXT PRIMARY KEY,
			finished_at DATETIME NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			skipped_unstarted INTEGER NOT NULL DEFAULT 0,
			skipped_partial INTEGER NOT NULL DEFAULT 0,
			focused_seconds INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			payload TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "migrate", Resource: "database", Err: err}
		}
	}
	return nil
}
