package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);`

// SQLite persists values in a single-table SQLite database on local disk
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLite opens (and creates if missing) the database at path
func NewSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, dnderr.InvalidArgument("storage path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "create storage directory").
			WithMeta("path", path)
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "open sqlite")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "ping sqlite").
			WithMeta("path", path)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "create kv table")
	}

	return &SQLite{db: db, now: time.Now}, nil
}

// Close closes the database handle
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("key is required")
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dnderr.NotFoundf("key '%s' not found", key).
			WithMeta("key", key)
	}
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to read key").WithMeta("key", key)
	}

	return value, nil
}

func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return dnderr.InvalidArgument("key is required")
	}
	if value == nil {
		value = []byte{}
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.now().UTC().UnixMilli())
	if err != nil {
		return dnderr.Wrap(err, "failed to write key").WithMeta("key", key)
	}

	return nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	if key == "" {
		return dnderr.InvalidArgument("key is required")
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return dnderr.Wrap(err, "failed to delete key").WithMeta("key", key)
	}

	return nil
}
