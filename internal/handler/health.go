// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"contact-book/internal/api"
	"contact-book/internal/cache"
	"contact-book/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 檢查資料庫與快取連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := cch.Set(ctx, "health:probe", "ok", time.Minute).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}
