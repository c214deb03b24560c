package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/audiovibe/audiovibe/internal/domain"
	gojson "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

// Cache stores a user's generated recommendation list in Redis so repeat
// feed loads skip rescoring. Invalidated whenever the user's favorites,
// history, ratings or preferences change.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func buildKey(userID int64) string {
	return fmt.Sprintf("rec:user:%d", userID)
}

// Get returns the cached recommendations and whether there was a hit.
func (c *Cache) Get(ctx context.Context, userID int64) ([]domain.Recommendation, bool, error) {
	key := buildKey(userID)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get recommendations from cache: %w", err)
	}

	var recs []domain.Recommendation
	if err := gojson.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal recommendations %s: %w", key, err)
	}
	return recs, true, nil
}

func (c *Cache) Set(ctx context.Context, userID int64, recs []domain.Recommendation) error {
	key := buildKey(userID)
	val, err := gojson.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set recommendations in cache: %w", err)
	}
	return nil
}

// ClearUser drops the user's cached feed; called when their activity
// changes.
func (c *Cache) ClearUser(ctx context.Context, userID int64) error {
	if err := c.client.Del(ctx, buildKey(userID)).Err(); err != nil {
		return fmt.Errorf("cache delete for user %d: %w", userID, err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
