package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/time-atlas/pkg/cache"
)

type Backend struct {
	db  *sql.DB
	now func() time.Time
}

func NewBackend(db *sql.DB) (*Backend, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Backend{
		db:  db,
		now: time.Now,
	}, nil
}

func (b *Backend) Get(ctx context.Context, key string) (any, bool, error) {
	query := `SELECT kind, payload, expires_at FROM cache_entries WHERE key = ?`

	var kind, payload string
	var expiresAt int64
	err := b.db.QueryRowContext(ctx, query, key).Scan(&kind, &payload, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query cache entry: %w", err)
	}

	if expiresAt <= b.now().Unix() {
		// Lazy eviction; a failed delete just leaves the row for the
		// next pass.
		_, _ = b.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE key = ?`, key)
		return nil, false, nil
	}

	value, err := cache.DecodeValue(cache.TaggedValue{Kind: cache.Kind(kind), Payload: payload})
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (b *Backend) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	tagged, err := cache.EncodeValue(value)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cache_entries (key, kind, payload, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			kind = excluded.kind,
			payload = excluded.payload,
			expires_at = excluded.expires_at`

	expiresAt := b.now().Add(ttl).Unix()
	if _, err := b.db.ExecContext(ctx, query, key, string(tagged.Kind), tagged.Payload, expiresAt); err != nil {
		return fmt.Errorf("upsert cache entry: %w", err)
	}
	return nil
}

func (b *Backend) Flush(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, `DELETE FROM cache_entries`); err != nil {
		return fmt.Errorf("flush cache entries: %w", err)
	}
	return nil
}

func (b *Backend) Close() error {
	return b.db.Close()
}
