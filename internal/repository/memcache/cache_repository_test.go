package memcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/rural-itinerary/internal/repository/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCacheRepository(t *testing.T) {
	ctx := context.Background()
	repo := memcache.NewCacheRepository(time.Hour, time.Minute, zap.NewNop())

	t.Run("miss", func(t *testing.T) {
		val, err := repo.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, val)

		ok, err := repo.Exists(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set get delete", func(t *testing.T) {
		buf := []byte("kandy")
		require.NoError(t, repo.Set(ctx, "geocode:kandy", buf, 0))
		buf[0] = 'X'

		val, err := repo.Get(ctx, "geocode:kandy")
		require.NoError(t, err)
		assert.Equal(t, []byte("kandy"), val)

		require.NoError(t, repo.Delete(ctx, "geocode:kandy"))
		val, err = repo.Get(ctx, "geocode:kandy")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("expiry", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "route:short", []byte("1"), 20*time.Millisecond))

		ok, err := repo.Exists(ctx, "route:short")
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Eventually(t, func() bool {
			ok, _ := repo.Exists(ctx, "route:short")
			return !ok
		}, time.Second, 10*time.Millisecond)
	})
}
