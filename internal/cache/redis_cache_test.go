package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedProduct struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := config.CacheConfig{DefaultTTL: 10 * time.Minute}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func TestKey(t *testing.T) {
	assert.Equal(t, "product:42", cache.Key(cache.ProductKeyPrefix, "42"))
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.ProductKeyPrefix, "p1")
	value := cachedProduct{Name: "Mug", Price: 9.5}
	data, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Success - Hit", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(string(data))

		// Act
		var result cachedProduct
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, value, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Miss", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)

		var result cachedProduct
		found, err := redisCache.Get(ctx, key, &result)

		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		redisErr := errors.New("connection reset")
		mock.ExpectGet(key).SetErr(redisErr)

		var result cachedProduct
		found, err := redisCache.Get(ctx, key, &result)

		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, redisErr)
	})

	t.Run("Failure - Corrupt Value", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(`{"name": 3}`)

		var result cachedProduct
		found, err := redisCache.Get(ctx, key, &result)

		require.Error(t, err)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "failed to unmarshal cache data")
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.ProductKeyPrefix, "p1")
	value := cachedProduct{Name: "Mug", Price: 9.5}
	data, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectSet(key, data, time.Minute).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, key, value, time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Default TTL", func(t *testing.T) {
		redisCache, mock, cfg := setup(t)
		mock.ExpectSet(key, data, cfg.DefaultTTL).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, key, value, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Marshal Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		err := redisCache.Set(ctx, key, make(chan int), time.Minute)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal value")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Multiple Keys", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectDel("product:a", "product:b").SetVal(2)

		require.NoError(t, redisCache.Delete(ctx, "product:a", "product:b"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Keys", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		require.NoError(t, redisCache.Delete(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectDel("product:a").SetErr(errors.New("readonly"))

		err := redisCache.Delete(ctx, "product:a")

		require.Error(t, err)
	})
}
