// Package sqlite provides the local key/value store kept under the state
// directory. It is the default backend for the session and boss HP
// repositories.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jeondoksi/jeondoksi-cli/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// Entry is a stored row
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// DB is a key/value table in a sqlite file
type DB struct {
	db   *sql.DB
	path string
}

// Open creates the parent directory and the kv table when missing
func Open(ctx context.Context, path string) (*DB, error) {
	if path == "" {
		return nil, errors.InvalidArgument("sqlite: path is required")
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, errors.Wrapf(err, "failed to create state directory for %s", path)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	// one writer; the CLI never needs more
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create kv table")
	}

	return &DB{db: db, path: path}, nil
}

// Path returns the file backing the store
func (d *DB) Path() string {
	return d.path
}

// Close closes the database
func (d *DB) Close() error {
	return d.db.Close()
}

// Get returns the value stored under key or a NotFound error
func (d *DB) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := d.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", errors.NotFoundf("key %s not found", key)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to get %s", key)
	}
	return value, nil
}

// Set inserts or replaces the value under key
func (d *DB) Set(ctx context.Context, key, value string, at time.Time) error {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, at.UTC())
	if err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (d *DB) Delete(ctx context.Context, key string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}
	return nil
}

// List returns every entry whose key starts with prefix, ordered by key
func (d *DB) List(ctx context.Context, prefix string) ([]Entry, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT key, value, updated_at FROM kv WHERE key LIKE ? ESCAPE '\' ORDER BY key`,
		escapeLike(prefix)+"%")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", prefix)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan kv row")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate kv rows")
	}
	return entries, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
