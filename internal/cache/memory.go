package cache

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

var ErrNotFound = errors.New("key not found")

// memoryCacheSize caps the number of live entries; each session holds at
// most a cart blob and a location blob.
const memoryCacheSize = 10_000

type entry struct {
	value     string
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// MemoryProvider is the default single-instance store for session blobs.
// Expired entries are dropped lazily on read; the LRU bound keeps the
// footprint fixed without a sweeper.
type MemoryProvider struct {
	entries *lru.Cache[string, entry]
}

func NewMemoryProvider() (*MemoryProvider, error) {
	c, err := lru.New[string, entry](memoryCacheSize)
	if err != nil {
		return nil, err
	}
	return &MemoryProvider{entries: c}, nil
}

func (m *MemoryProvider) Get(ctx context.Context, key string) (string, error) {
	_ = ctx
	cached, exists := m.entries.Get(key)
	if !exists {
		return "", ErrNotFound
	}
	if cached.expired(time.Now()) {
		m.entries.Remove(key)
		return "", ErrNotFound
	}
	return cached.value, nil
}

func (m *MemoryProvider) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	_ = ctx
	m.entries.Add(key, entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
	return nil
}

func (m *MemoryProvider) Delete(ctx context.Context, key string) error {
	_ = ctx
	m.entries.Remove(key)
	return nil
}

func (m *MemoryProvider) Close() error {
	return nil
}
