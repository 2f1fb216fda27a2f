package cache

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphicoglobal/atelier/pkg/config"
)

func TestNewRedisClient_Rejects(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"not a url", "not-a-valid-url"},
		{"wrong scheme", "http://localhost:6379"},
		{"unreachable", "redis://127.0.0.1:19999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRedisClient(context.Background(), &config.Config{RedisURL: tt.url})
			assert.Error(t, err)
		})
	}
}

func TestClose_NilClient(t *testing.T) {
	assert.NoError(t, (&RedisClient{}).Close())
}

// Integration tests: skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	ctx := context.Background()

	rc, err := NewRedisClient(ctx, &config.Config{RedisURL: redisURL})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, rc.Ping(ctx))
	})

	t.Run("PoolSettings", func(t *testing.T) {
		opts := rc.Client().Options()
		assert.Equal(t, 5, opts.PoolSize)
		assert.Equal(t, 3, opts.MaxRetries)
	})

	t.Run("CatalogKeyRoundTrip", func(t *testing.T) {
		key := "atelier:test:" + t.Name()
		t.Cleanup(func() { rc.Client().Del(ctx, key) })

		require.NoError(t, rc.Client().Set(ctx, key, `[]`, 0).Err())
		got, err := rc.Client().Get(ctx, key).Result()
		require.NoError(t, err)
		assert.Equal(t, `[]`, got)

		_, err = rc.Client().Get(ctx, key+":absent").Result()
		assert.ErrorIs(t, err, redis.Nil)
	})
}
