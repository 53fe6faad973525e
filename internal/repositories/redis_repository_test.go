package repository

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimitTest(t *testing.T, now time.Time) (*rateLimitRepository, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := config.RateConfig{MaxAttempts: 3, WindowSize: time.Minute}

	repo := NewRateLimitRepo(client, cfg).(*rateLimitRepository)
	repo.now = func() time.Time { return now }

	return repo, mock
}

func expectAttempt(mock redismock.ClientMock, key string, now time.Time, count int64) {
	mock.ExpectZRemRangeByScore(key, "0", "1699999940").SetVal(0)
	mock.ExpectZAdd(key, redis.Z{Score: float64(now.Unix()), Member: now.UnixNano()}).SetVal(1)
	mock.ExpectZCard(key).SetVal(count)
	mock.ExpectExpire(key, time.Minute).SetVal(true)
}

func TestCheckLoginRateLimit(t *testing.T) {
	now := time.Unix(1700000000, 0)
	key := "login_attempts:jane@example.com"

	t.Run("Success - within limit", func(t *testing.T) {
		// Arrange
		repo, mock := setupRateLimitTest(t, now)
		expectAttempt(mock, key, now, 2)

		// Act
		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(t.Context(), "jane@example.com")

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 1, remaining)
		assert.Zero(t, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Blocked - over limit", func(t *testing.T) {
		repo, mock := setupRateLimitTest(t, now)
		expectAttempt(mock, key, now, 4)
		mock.ExpectZRangeWithScores(key, 0, 0).SetVal([]redis.Z{{Score: float64(now.Unix() - 20), Member: "x"}})

		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(t.Context(), "jane@example.com")

		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
		assert.Equal(t, 40, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
