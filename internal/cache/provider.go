package cache

// Package cache provides session-scoped state storage for carts and
// detected locations.

import (
	"context"
	"fmt"
	"time"
)

// Provider defines the interface for storing small session-scoped blobs.
type Provider interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type Config struct {
	Provider              string
	RedisConnectionString string
}

func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "memory", "":
		return NewMemoryProvider()
	case "redis":
		return NewRedisProvider(cfg.RedisConnectionString)
	default:
		return nil, fmt.Errorf("unsupported cache provider: %s", cfg.Provider)
	}
}

// CartKey is the storage key for a session's cart lines.
func CartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// LocationKey is the storage key for a session's cached location.
func LocationKey(sessionID string) string {
	return fmt.Sprintf("geo:%s", sessionID)
}
