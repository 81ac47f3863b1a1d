package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/ryoma-abe/site-launcher/internal/log"
)

// schema is the single kv table. One row per key; the registry lives
// under one key as a JSON blob.
const schema = `
CREATE TABLE IF NOT EXISTS kv (
	name TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at dbPath and ensures
// the kv table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	log.Debug(log.CatStore, "Opening database", "path", dbPath)
	db, err := sql.Open("sqlite3", "file:"+dbPath)
	if err != nil {
		log.ErrorErr(log.CatStore, "Failed to open database", err, "path", dbPath)
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Verify connection works
	if err := db.Ping(); err != nil {
		log.ErrorErr(log.CatStore, "Failed to ping database", err, "path", dbPath)
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		log.ErrorErr(log.CatStore, "Failed to ensure schema", err, "path", dbPath)
		_ = db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}
	log.Info(log.CatStore, "Connected to database", "path", dbPath)
	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE name = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.ErrorErr(log.CatStore, "Get failed", err, "key", key)
		return nil, fmt.Errorf("reading %q: %w", key, err)
	}
	return value, nil
}

// Set writes value under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		log.ErrorErr(log.CatStore, "Set failed", err, "key", key)
		return fmt.Errorf("writing %q: %w", key, err)
	}
	log.Debug(log.CatStore, "Set", "key", key, "bytes", len(value))
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE name = ?`, key); err != nil {
		log.ErrorErr(log.CatStore, "Delete failed", err, "key", key)
		return fmt.Errorf("deleting %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path, used for change watching.
func (s *SQLiteStore) Path() string {
	return s.dbPath
}
