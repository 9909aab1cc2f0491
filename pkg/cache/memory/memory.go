// Package memory is the in-process cache backend. Values are held as
// native references, so type preservation is trivial.
package memory

import (
	"context"
	"sync"
	"time"
)

type item struct {
	value     any
	expiresAt time.Time
}

type Backend struct {
	mu    sync.Mutex
	items map[string]item
	now   func() time.Time
}

func NewBackend() *Backend {
	return &Backend{
		items: make(map[string]item),
		now:   time.Now,
	}
}

func (b *Backend) Get(_ context.Context, key string) (any, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	it, ok := b.items[key]
	if !ok {
		return nil, false, nil
	}
	if !b.now().Before(it.expiresAt) {
		delete(b.items, key)
		return nil, false, nil
	}
	return it.value, true, nil
}

func (b *Backend) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items[key] = item{
		value:     value,
		expiresAt: b.now().Add(ttl),
	}
	return nil
}

func (b *Backend) Flush(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = make(map[string]item)
	return nil
}

func (b *Backend) Close() error {
	return nil
}
