package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"contact-book/internal/cache"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	t.Run("first hit sets window", func(t *testing.T) {
		var expireKey string
		var expireTTL time.Duration
		cch := &cache.FakeCache{
			IncrFn: func(_ context.Context, key string) *redis.IntCmd {
				return redis.NewIntResult(1, nil)
			},
			ExpireFn: func(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
				expireKey = key
				expireTTL = ttl
				return redis.NewBoolResult(true, nil)
			},
		}
		ctx, rec := newContext("")
		called := false
		err := RateLimit(cch, 2, time.Minute)(func(c echo.Context) error {
			called = true
			return c.String(http.StatusOK, "ok")
		})(ctx)
		require.NoError(t, err)
		require.True(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, expireKey, "ratelimit:")
		require.Equal(t, time.Minute, expireTTL)
	})

	t.Run("under limit passes", func(t *testing.T) {
		cch := &cache.FakeCache{
			IncrFn: func(context.Context, string) *redis.IntCmd {
				return redis.NewIntResult(2, nil)
			},
		}
		ctx, rec := newContext("")
		err := RateLimit(cch, 2, time.Minute)(func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("over limit rejected", func(t *testing.T) {
		cch := &cache.FakeCache{
			IncrFn: func(context.Context, string) *redis.IntCmd {
				return redis.NewIntResult(3, nil)
			},
		}
		ctx, rec := newContext("")
		called := false
		err := RateLimit(cch, 2, time.Minute)(func(echo.Context) error { called = true; return nil })(ctx)
		require.NoError(t, err)
		require.False(t, called)
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Contains(t, rec.Body.String(), "too many requests")
	})

	t.Run("redis error fails open", func(t *testing.T) {
		cch := &cache.FakeCache{
			IncrFn: func(context.Context, string) *redis.IntCmd {
				return redis.NewIntResult(0, errors.New("down"))
			},
		}
		ctx, rec := newContext("")
		called := false
		err := RateLimit(cch, 2, time.Minute)(func(c echo.Context) error {
			called = true
			return c.String(http.StatusOK, "ok")
		})(ctx)
		require.NoError(t, err)
		require.True(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
