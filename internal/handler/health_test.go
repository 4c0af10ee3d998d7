// File: internal/handler/health_test.go
package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contact-book/internal/cache"
	"contact-book/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newHealthCtx() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func statusCmd(err error) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
	}
	return cmd
}

func TestHealthHandler(t *testing.T) {
	t.Run("database unhealthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return errors.New("down") }}
		ctx, rec := newHealthCtx()
		require.NoError(t, HealthHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
		cch := &cache.FakeCache{
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return statusCmd(errors.New("down"))
			},
		}
		ctx, rec := newHealthCtx()
		require.NoError(t, HealthHandler(db, cch)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})

	t.Run("healthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
		var probed string
		cch := &cache.FakeCache{
			SetFn: func(_ context.Context, key string, _ any, _ time.Duration) *redis.StatusCmd {
				probed = key
				return statusCmd(nil)
			},
		}
		ctx, rec := newHealthCtx()
		require.NoError(t, HealthHandler(db, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "health:probe", probed)
		require.Contains(t, rec.Body.String(), `"status":"ok"`)
	})
}
