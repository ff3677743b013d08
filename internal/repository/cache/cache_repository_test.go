package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/rural-itinerary/internal/config"
	"github.com/rural-itinerary/internal/repository/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func getTestRedis(t *testing.T) *cache.Redis {
	t.Helper()

	r, err := cache.NewRedis(&config.RedisConfig{Host: "localhost", Port: 6379, DB: 1}, zap.NewNop())
	if err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestCacheRepository_RoundTrip(t *testing.T) {
	r := getTestRedis(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	key := "test:geocode:colombo"
	t.Cleanup(func() { repo.Delete(ctx, key) })

	val, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val, "miss returns nil without error")

	require.NoError(t, repo.Set(ctx, key, []byte(`{"lon":79.86,"lat":6.93}`), time.Minute))

	exists, err := repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	val, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lon":79.86,"lat":6.93}`, string(val))

	// ключи хранятся с префиксом сервиса
	raw, err := r.Client().Get(ctx, cache.KeyPrefix+key).Result()
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	require.NoError(t, repo.Delete(ctx, key))
	exists, err = repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCacheRepository_TTL(t *testing.T) {
	r := getTestRedis(t)
	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	key := "test:route:ttl"
	t.Cleanup(func() { repo.Delete(ctx, key) })

	require.NoError(t, repo.Set(ctx, key, []byte("1"), 30*time.Second))

	ttl, err := r.Client().TTL(ctx, cache.KeyPrefix+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 30*time.Second)
}

func TestRedis_ConnectFailure(t *testing.T) {
	_, err := cache.NewRedis(&config.RedisConfig{Host: "127.0.0.1", Port: 1}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}
