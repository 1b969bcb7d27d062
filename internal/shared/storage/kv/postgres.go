package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres is a Store persisting into a single kv_entries table. It uses
// database/sql over the pgx stdlib driver, matching the rest of the
// storage layer.
type Postgres struct {
	DB *sql.DB
}

// Get fetches the value for key.
func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM kv_entries WHERE key = $1`
	var value string
	err := p.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv postgres get %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value for key.
func (p *Postgres) Set(ctx context.Context, key string, value string) error {
	const query = `
INSERT INTO kv_entries (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := p.DB.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("kv postgres set %s: %w", key, err)
	}
	return nil
}
