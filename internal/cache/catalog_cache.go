package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CatalogCache stores the public event catalog in Redis as JSON. A nil client
// degrades to a cache miss on every call so the service works without Redis.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache wraps an existing client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// Get unmarshals the cached value for key into result, reporting whether the
// key was present.
func (c *CatalogCache) Get(ctx context.Context, key string, result any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), result); err != nil {
		return false, err
	}
	return true, nil
}

// Set marshals value as JSON under key with the given expiration.
func (c *CatalogCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

// Invalidate removes key.
func (c *CatalogCache) Invalidate(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}
