// File: cmd/service/main.go
// @title        Contact Book API
// @version      1.0
// @description  聯絡人管理系統後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"contact-book/internal/cache"
	"contact-book/internal/config"
	"contact-book/internal/database"
	"contact-book/internal/router"
	"contact-book/internal/service"
	"contact-book/internal/store"
	"contact-book/internal/upload"
	"contact-book/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "contact-book/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newTokenService = service.NewTokenService
	newUploadStore  = upload.NewStore
	newWorkerPool   = worker.NewPool
	ensureAdminFn   = store.EnsureAdmin
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	// .env 不存在時直接使用既有環境變數
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 簽章密鑰缺失必須在啟動階段失敗，不能帶病上線
	tokens, err := newTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("token service: %v", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	// 預設管理者帳號不存在就建立，被降級則升回 admin
	adminHash, err := service.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("管理者密碼雜湊失敗: %v", err)
	}
	if err := ensureAdminFn(context.Background(), db, cfg.AdminEmail, adminHash); err != nil {
		return fmt.Errorf("管理者帳號初始化失敗: %v", err)
	}

	uploads, err := newUploadStore(cfg.UploadDir, cfg.MaxUploadBytes, cfg.AllowedFormats)
	if err != nil {
		return fmt.Errorf("上傳目錄建立失敗: %v", err)
	}

	wp := newWorkerPool(1)
	defer wp.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("10M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))

	router.Setup(e, db, redis, tokens, uploads, wp, cfg)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.Addr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
