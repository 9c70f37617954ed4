package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is not great with many writers
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// RetryPolicy bounds the startup connection attempts.
type RetryPolicy struct {
	Attempts     int
	InitialDelay time.Duration
}

// DefaultRetryPolicy tries 5 times, waiting 1s, 2s, 4s, 8s in between.
var DefaultRetryPolicy = RetryPolicy{Attempts: 5, InitialDelay: time.Second}

// ConnectWithRetry calls open until it succeeds or the policy is exhausted,
// doubling the wait after every failure. onRetry (optional) is invoked before
// each wait.
func ConnectWithRetry(
	ctx context.Context,
	open func() (*sql.DB, error),
	p RetryPolicy,
	onRetry func(attempt int, wait time.Duration, err error),
) (*sql.DB, error) {
	if p.Attempts < 1 {
		p.Attempts = 1
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.InitialDelay
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxInterval = p.InitialDelay << 16
	exp.MaxElapsedTime = 0 // bounded by attempts only

	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(p.Attempts-1)), ctx)

	attempt := 0
	db, err := backoff.RetryNotifyWithData(func() (*sql.DB, error) {
		attempt++
		return open()
	}, policy, func(err error, wait time.Duration) {
		if onRetry != nil {
			onRetry(attempt, wait, err)
		}
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("connect aborted after %d attempts: %w", attempt, ctx.Err())
		}
		return nil, fmt.Errorf("connect failed after %d attempts: %w", attempt, err)
	}
	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const schemaContents = `
CREATE TABLE IF NOT EXISTS contents (
    id TEXT PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    link TEXT NOT NULL,
    type TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);
`

const schemaContentsByUser = `
CREATE INDEX IF NOT EXISTS idx_contents_user_id ON contents (user_id, created_at);
`

const schemaShareLinks = `
CREATE TABLE IF NOT EXISTS share_links (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    hash TEXT UNIQUE NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaUsers,
		schemaContents,
		schemaContentsByUser,
		schemaShareLinks,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
