package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vitalroasters/storefront/internal/cache"
)

const sessionTTL = 7 * 24 * time.Hour

// Repository persists cart lines between requests. The cart stays a
// client-owned convenience: a missing or corrupt stored cart is treated
// as empty, never as an error.
type Repository interface {
	Load(ctx context.Context, sessionID string) ([]Line, error)
	Save(ctx context.Context, sessionID string, lines []Line) error
	Clear(ctx context.Context, sessionID string) error
}

// CacheRepository stores carts as JSON blobs in a cache.Provider.
type CacheRepository struct {
	provider cache.Provider
}

func NewCacheRepository(provider cache.Provider) *CacheRepository {
	return &CacheRepository{provider: provider}
}

func (r *CacheRepository) Load(ctx context.Context, sessionID string) ([]Line, error) {
	raw, err := r.provider.Get(ctx, cache.CartKey(sessionID))
	if errors.Is(err, cache.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		// Corrupt blob: start over rather than wedging the session.
		return nil, nil
	}
	return lines, nil
}

func (r *CacheRepository) Save(ctx context.Context, sessionID string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := r.provider.Set(ctx, cache.CartKey(sessionID), string(raw), sessionTTL); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (r *CacheRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.provider.Delete(ctx, cache.CartKey(sessionID)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
