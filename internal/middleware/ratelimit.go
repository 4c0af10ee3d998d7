package middleware

import (
	"net/http"
	"time"

	"contact-book/internal/api"
	"contact-book/internal/cache"

	"github.com/labstack/echo/v4"
)

// RateLimit 以 Redis INCR 實作每個來源 IP 的固定窗口限流
// 第一次命中時設定窗口過期時間；超過 limit 回 429
// Redis 異常時放行，限流不應成為服務單點
func RateLimit(store cache.Cache, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "ratelimit:" + c.RealIP()

			count, err := store.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if count == 1 {
				store.Expire(ctx, key, window)
			}
			if count > int64(limit) {
				return c.JSON(http.StatusTooManyRequests, api.ErrorResponse{Message: "too many requests"})
			}
			return next(c)
		}
	}
}
