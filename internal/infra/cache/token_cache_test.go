package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/internal/domain/service"
)

func newTestCache(t *testing.T) (service.TokenCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisTokenCache(client), mr
}

func TestRedisTokenCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "auth:email-verification:user-1", "token-value", time.Minute)
	assert.NoError(t, err)

	value, err := cache.Get(ctx, "auth:email-verification:user-1")
	assert.NoError(t, err)
	assert.Equal(t, "token-value", value)
}

func TestRedisTokenCache_GetMissing(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Get(context.Background(), "auth:email-verification:absent")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisTokenCache_TTLExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "auth:session-blacklist:sess-1", "true", time.Minute)
	require.NoError(t, err)

	// miniredis only advances its clock manually.
	mr.FastForward(2 * time.Minute)

	_, err = cache.Get(ctx, "auth:session-blacklist:sess-1")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisTokenCache_Delete(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "auth:password-reset:user-1", "token", time.Minute))
	assert.NoError(t, cache.Delete(ctx, "auth:password-reset:user-1"))

	_, err := cache.Get(ctx, "auth:password-reset:user-1")
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	// Deleting an absent key is a no-op.
	assert.NoError(t, cache.Delete(ctx, "auth:password-reset:user-1"))
}

func TestRedisTokenCache_OverwriteResetsTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "auth:email-verification:user-1", "first", time.Minute))
	mr.FastForward(30 * time.Second)
	require.NoError(t, cache.Set(ctx, "auth:email-verification:user-1", "second", time.Minute))
	mr.FastForward(45 * time.Second)

	value, err := cache.Get(ctx, "auth:email-verification:user-1")
	assert.NoError(t, err)
	assert.Equal(t, "second", value)
}
