package sessions

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRedisClient connects to REDIS_ADDR or skips the test.
func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping Redis session tests")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not reachable at %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisRegistry_Lifecycle(t *testing.T) {
	client := newRedisClient(t)
	reg := NewRedisRegistry(client, time.Minute)
	ctx := context.Background()

	token, err := reg.Issue(ctx, 99)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Revoke(ctx, token) })

	userID, ok, err := reg.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(99), userID)

	ttl, err := client.TTL(ctx, reg.key(token)).Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)

	require.NoError(t, reg.Revoke(ctx, token))
	require.NoError(t, reg.Revoke(ctx, token))

	_, ok, err = reg.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisRegistry_Expiry(t *testing.T) {
	client := newRedisClient(t)
	reg := NewRedisRegistry(client, 1100*time.Millisecond)
	ctx := context.Background()

	token, err := reg.Issue(ctx, 5)
	require.NoError(t, err)

	time.Sleep(1500 * time.Millisecond)
	_, ok, err := reg.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisRegistry_EmptyToken(t *testing.T) {
	reg := NewRedisRegistry(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), 0)
	_, ok, err := reg.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, reg.Revoke(context.Background(), ""))
	assert.Equal(t, DefaultTTL, reg.ttl)
}
