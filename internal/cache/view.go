package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// viewKeyPrefix is the Redis key prefix for cached listing views.
	viewKeyPrefix = "view:"

	// DefaultViewTTL is the TTL for cached views when none is configured.
	DefaultViewTTL = 5 * time.Minute
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// GetView retrieves a cached listing view by its path.
// Returns ErrCacheMiss if the view is not cached.
func (c *Cache) GetView(ctx context.Context, path string) ([]byte, error) {
	data, err := c.client.Get(ctx, viewKeyPrefix+path).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

// SetView stores a rendered listing view under its path.
func (c *Cache) SetView(ctx context.Context, path string, data []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultViewTTL
	}

	if err := c.client.Set(ctx, viewKeyPrefix+path, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache view: %w", err)
	}
	return nil
}

// InvalidateView marks a cached view stale by deleting it.
// The next read recomputes it from the database.
func (c *Cache) InvalidateView(ctx context.Context, path string) error {
	if err := c.client.Del(ctx, viewKeyPrefix+path).Err(); err != nil {
		return fmt.Errorf("failed to invalidate view: %w", err)
	}
	return nil
}
