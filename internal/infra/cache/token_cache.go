package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
)

// redisTokenCache is a concrete implementation of the TokenCache interface
// backed by Redis. TTL eviction and per-key atomicity come from Redis itself.
type redisTokenCache struct {
	client *redis.Client
}

// NewRedisTokenCache is the constructor for redisTokenCache.
func NewRedisTokenCache(client *redis.Client) service.TokenCache {
	return &redisTokenCache{client: client}
}

// Set writes value under key with the given TTL.
func (c *redisTokenCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to set cache key %s", key)
	}

	return nil
}

// Get returns the value under key, mapping redis.Nil to service.ErrCacheMiss.
func (c *redisTokenCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", service.ErrCacheMiss
		}

		return "", errors.Wrapf(err, "failed to get cache key %s", key)
	}

	return value, nil
}

// Delete removes key. Deleting an absent key is not an error.
func (c *redisTokenCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete cache key %s", key)
	}

	return nil
}
