package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ledgerdash/ledgerdash/internal/model"
)

const (
	// sessionKeyPrefix is the Redis key prefix for browser sessions.
	sessionKeyPrefix = "session:"

	// DefaultSessionTTL is the session lifetime when none is configured.
	DefaultSessionTTL = 24 * time.Hour
)

// GetSession retrieves a session by its opaque token.
// Returns nil if the token is unknown or expired (not an error).
func (c *Cache) GetSession(ctx context.Context, token string) (*model.Session, error) {
	data, err := c.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Corrupted entry - treat as missing
		return nil, nil //nolint:nilerr
	}

	return &sess, nil
}

// SetSession stores a session under its token with the given TTL.
func (c *Cache) SetSession(ctx context.Context, token string, sess *model.Session, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := c.client.Set(ctx, sessionKeyPrefix+token, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// DeleteSession removes a session. Used on logout.
func (c *Cache) DeleteSession(ctx context.Context, token string) error {
	return c.client.Del(ctx, sessionKeyPrefix+token).Err()
}
