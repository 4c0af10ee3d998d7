// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 集中所有執行期設定，啟動時載入一次後以值傳遞
// Load 之後不再變動
type Config struct {
	Addr        string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string
	TokenTTL  time.Duration

	AdminEmail    string
	AdminPassword string

	UploadDir      string
	MaxUploadBytes int64
	AllowedFormats []string

	RateLimit  int
	RateWindow time.Duration

	CORSOrigin string
}

// Load 自環境變數讀取設定；DATABASE_URL 與 JWT_SECRET 為必填
// 其餘皆有適合本機開發的預設值
func Load() (Config, error) {
	cfg := Config{
		Addr:           getEnv("ADDR", ":8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@contactbook.com"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "123456"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		CORSOrigin:     getEnv("FRONTEND_URL", "*"),
		AllowedFormats: splitList(getEnv("ALLOWED_FORMATS", "jpg,jpeg,png,gif,webp")),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.TokenTTL, err = getEnvDuration("JWT_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.RateWindow, err = getEnvDuration("RATE_WINDOW", 15*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit, err = getEnvInt("RATE_LIMIT", 100); err != nil {
		return Config{}, err
	}
	maxBytes, err := getEnvInt("MAX_FILE_SIZE", 256_000)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxUploadBytes = int64(maxBytes)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
