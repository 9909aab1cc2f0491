// Package cache provides a TTL key/value store over pluggable backends
// with single-flight get-or-compute semantics.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Backend is the storage capability behind a Store. Implementations are
// selected once at composition time. Get reports presence explicitly; a
// missing key is not an error. Set replaces any prior value and TTL.
type Backend interface {
	Get(ctx context.Context, key string) (any, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Flush(ctx context.Context) error
	Close() error
}

// Store wraps a Backend with a process-wide default TTL and collapses
// concurrent misses per key. Backend failures never surface to callers:
// a failing get degrades to a miss, a failing set is dropped.
type Store struct {
	backend    Backend
	defaultTTL time.Duration
	group      singleflight.Group
}

func NewStore(backend Backend, defaultTTL time.Duration) *Store {
	return &Store{
		backend:    backend,
		defaultTTL: defaultTTL,
	}
}

func (s *Store) DefaultTTL() time.Duration {
	return s.defaultTTL
}

// Get returns the cached value if present and unexpired.
func (s *Store) Get(ctx context.Context, key string) (any, bool) {
	value, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("cache get failed, treating as miss")
		return nil, false
	}
	return value, ok
}

// Set stores the value under key. A nil value is a no-op: absence is
// encoded by eviction, never by a stored null. A ttl <= 0 falls back to
// the store default.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if value == nil {
		return
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	if err := s.backend.Set(ctx, key, value, ttl); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("cache set failed, dropping entry")
	}
}

// GetAndSet returns the cached value for key, or computes, stores and
// returns it on a miss. Concurrent misses for the same key share a
// single in-process computation; compute errors are returned to every
// waiter and never cached.
func (s *Store) GetAndSet(
	ctx context.Context,
	key string,
	ttl time.Duration,
	compute func(ctx context.Context) (any, error),
) (any, error) {
	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.group.Do(key, func() (any, error) {
		// A waiter may have populated the key while we queued.
		if value, ok := s.Get(ctx, key); ok {
			return value, nil
		}
		value, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, value, ttl)
		return value, nil
	})
	return value, err
}

// Flush clears all entries. Test isolation only.
func (s *Store) Flush(ctx context.Context) {
	if err := s.backend.Flush(ctx); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("cache flush failed")
	}
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// Fetch is a typed GetAndSet. Values surviving a serializing backend
// come back as generic JSON; Fetch re-types them into T via a JSON
// round-trip when a direct assertion does not hold.
func Fetch[T any](
	ctx context.Context,
	s *Store,
	key string,
	ttl time.Duration,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	var zero T

	value, err := s.GetAndSet(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}

	if typed, ok := value.(T); ok {
		return typed, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("re-encode cached value for %q: %w", key, err)
	}
	var typed T
	if err := json.Unmarshal(raw, &typed); err != nil {
		return zero, fmt.Errorf("decode cached value for %q: %w", key, err)
	}
	return typed, nil
}
