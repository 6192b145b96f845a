package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestRedisTokenDenylist_Integration(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	rdb, err := NewRedisClient(
		getEnv("REDIS_HOST", "localhost"),
		getEnv("REDIS_PORT", "6379"),
		getEnv("REDIS_PASSWORD", ""),
		1,
	)
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer rdb.Close()

	ctx := context.Background()
	denylist := NewRedisTokenDenylist(rdb)

	t.Run("Revoked ids are reported until they expire", func(t *testing.T) {
		id := uuid.NewString()

		revoked, err := denylist.IsRevoked(ctx, id)
		require.NoError(t, err)
		assert.False(t, revoked)

		require.NoError(t, denylist.Revoke(ctx, id, time.Second))

		revoked, err = denylist.IsRevoked(ctx, id)
		require.NoError(t, err)
		assert.True(t, revoked)

		ttl, err := rdb.TTL(ctx, "denylist:"+id).Result()
		require.NoError(t, err)
		assert.LessOrEqual(t, ttl, time.Second)

		time.Sleep(1100 * time.Millisecond)

		revoked, err = denylist.IsRevoked(ctx, id)
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Non-positive ttl stores nothing", func(t *testing.T) {
		id := uuid.NewString()
		require.NoError(t, denylist.Revoke(ctx, id, 0))

		exists, err := rdb.Exists(ctx, "denylist:"+id).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(0), exists)
	})
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	_, err := NewRedisClient("127.0.0.1", "1", "", 0)
	assert.Error(t, err)
}

func TestMemoryTokenDenylist(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	denylist := NewMemoryTokenDenylist()
	denylist.now = func() time.Time { return now }

	require.NoError(t, denylist.Revoke(ctx, "jti-1", time.Minute))
	require.NoError(t, denylist.Revoke(ctx, "jti-ignored", -time.Second))

	revoked, err := denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, _ = denylist.IsRevoked(ctx, "jti-ignored")
	assert.False(t, revoked)

	now = now.Add(time.Minute)

	revoked, _ = denylist.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked, "entries lapse together with the token")
	assert.Empty(t, denylist.revoked)

	require.NoError(t, denylist.Revoke(ctx, "jti-2", time.Second))
	now = now.Add(2 * time.Second)
	require.NoError(t, denylist.Revoke(ctx, "jti-3", time.Hour))
	assert.Len(t, denylist.revoked, 1, "expired ids are swept on write")
}
