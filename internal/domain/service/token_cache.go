package service

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by TokenCache.Get when the key does not exist,
// either because it was never written or because its TTL elapsed.
var ErrCacheMiss = errors.New("cache entry not found")

// TokenCache is the ephemeral key-value store used for single-use token
// tracking and the session blacklist. Each key carries its own TTL; the store
// must provide per-key atomicity.
type TokenCache interface {
	// Set writes value under key with the given TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns the value under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// CacheKey builds a namespaced cache key as "<prefix>:<id>".
func CacheKey(prefix, id string) string {
	return prefix + ":" + id
}
