package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResourceCache implements usecase.Cache using Redis. Values are whole
// serialized resources keyed by resource type + full natural key; entries
// are only ever replaced wholesale, never partially mutated.
type ResourceCache struct {
	client *redis.Client
	prefix string
}

// NewResourceCache creates a new ResourceCache.
func NewResourceCache(client *redis.Client) *ResourceCache {
	return &ResourceCache{
		client: client,
		prefix: "resource:",
	}
}

// Get retrieves a cached value. The bool result reports a hit; a miss is
// not an error.
func (c *ResourceCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores a value with the TTL of its resource class.
func (c *ResourceCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// Delete removes cache entries, used when a submit freezes a branch-day.
func (c *ResourceCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.prefix + k
	}
	return c.client.Del(ctx, full...).Err()
}
