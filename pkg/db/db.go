// Package db owns the SQLite database used for caching generated scripts.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Register driver
)

// DB wraps the sql.DB connection.
type DB struct {
	*sql.DB
}

// Init opens the database and runs migrations.
func Init(path string) (*DB, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	// Enable WAL mode for better concurrency and set busy timeout
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=30000;"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	d := &DB{db}
	// Enforce single connection to avoid SQLITE_BUSY errors during concurrent writes
	db.SetMaxOpenConns(1)

	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return d, nil
}

func (d *DB) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS scripts (
			body_id TEXT NOT NULL,
			locale TEXT NOT NULL,
			tier INTEGER,
			script TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (body_id, locale)
		);`,
		`CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}

	for _, q := range queries {
		if _, err := d.Exec(q); err != nil {
			return fmt.Errorf("exec error: %w query: %s", err, q)
		}
	}

	return nil
}

// sqliteTime formats t compatible with SQLite DEFAULT CURRENT_TIMESTAMP.
func sqliteTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

// GetScript returns a cached script no older than ttl for the given body and
// locale. The second return value is false on a miss or an expired entry.
func (d *DB) GetScript(ctx context.Context, bodyID, locale string, ttl time.Duration) (script string, tier int, ok bool) {
	deadline := sqliteTime(time.Now().Add(-ttl))
	row := d.QueryRowContext(ctx,
		"SELECT script, tier FROM scripts WHERE body_id = ? AND locale = ? AND created_at >= ?",
		bodyID, locale, deadline)

	if err := row.Scan(&script, &tier); err != nil {
		return "", 0, false
	}
	return script, tier, true
}

// PutScript stores or refreshes a cached script.
func (d *DB) PutScript(ctx context.Context, bodyID, locale string, tier int, script string) error {
	_, err := d.ExecContext(ctx,
		`INSERT INTO scripts (body_id, locale, tier, script, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(body_id, locale) DO UPDATE SET tier = excluded.tier, script = excluded.script, created_at = excluded.created_at`,
		bodyID, locale, tier, script, sqliteTime(time.Now()))
	return err
}

// PruneScripts removes cached scripts older than the specified duration.
func (d *DB) PruneScripts(olderThan time.Duration) error {
	deadline := sqliteTime(time.Now().Add(-olderThan))
	_, err := d.Exec("DELETE FROM scripts WHERE created_at < ?", deadline)
	return err
}

// PruneCache removes generic cache entries older than the specified duration.
func (d *DB) PruneCache(olderThan time.Duration) error {
	deadline := sqliteTime(time.Now().Add(-olderThan))
	_, err := d.Exec("DELETE FROM cache WHERE created_at < ?", deadline)
	return err
}
