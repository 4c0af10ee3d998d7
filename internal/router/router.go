// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"contact-book/internal/cache"
	"contact-book/internal/config"
	"contact-book/internal/database"
	"contact-book/internal/handler"
	"contact-book/internal/handler/auth"
	"contact-book/internal/handler/contacts"
	"contact-book/internal/middleware"
	"contact-book/internal/service"
	"contact-book/internal/upload"
	"contact-book/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, tokens *service.TokenService, uploads *upload.Store, wp worker.Pool, cfg config.Config) {
	api := e.Group("/api", middleware.RateLimit(rdb, cfg.RateLimit, cfg.RateWindow))

	// 健康檢查
	api.GET("/health", handler.HealthHandler(db, rdb))

	// 註冊與登入（不需令牌）
	api.POST("/auth/signup", auth.SignupHandler(db, tokens))
	api.POST("/auth/login", auth.LoginHandler(db, tokens))

	// 更新個人資料（需登入）
	api.PUT("/auth/profile", auth.UpdateProfileHandler(db, tokens), middleware.RequireAuth(tokens))

	// 聯絡人查詢：所有登入使用者
	apiContacts := api.Group("/contacts", middleware.RequireAuth(tokens))
	apiContacts.GET("", contacts.ListContactsHandler(db))
	apiContacts.GET("/:id", contacts.GetContactHandler(db))

	// 聯絡人異動：一律要求 admin，缺一不可
	apiContactsAdmin := api.Group("/contacts", middleware.RequireAdmin(tokens))
	apiContactsAdmin.POST("", contacts.CreateContactHandler(db, uploads))
	apiContactsAdmin.PUT("/:id", contacts.UpdateContactHandler(db, uploads, wp))
	apiContactsAdmin.DELETE("/:id", contacts.DeleteContactHandler(db, uploads, wp))

	// 上傳圖片靜態服務
	e.Static(upload.URLPrefix, uploads.Dir())
}
