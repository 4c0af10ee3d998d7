// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"contact-book/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingSecret 啟動時未設定簽章密鑰，應視為致命錯誤
	ErrMissingSecret = errors.New("jwt secret not configured")

	// ErrInvalidToken 涵蓋所有驗證失敗情況（偽造、格式錯誤、過期）
	// 對外不區分失敗原因，避免洩漏令牌狀態
	ErrInvalidToken = errors.New("invalid or expired token")
)

// 測試可覆寫下列變數
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// Claims 定義 JWT 負載內容，固定為 id/email/role 三個身份欄位
type Claims struct {
	UserID int        `json:"id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService 以啟動時注入的密鑰與 TTL 發行並驗證存取令牌
// 建立後唯讀，可安全併發使用
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService 建立 TokenService；secret 為空回傳 ErrMissingSecret
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// TTL 回傳令牌有效期間
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue 依據使用者資訊產生 HS256 簽章的 JWT
func (s *TokenService) Issue(user model.User) (string, error) {
	now := timeNow()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   model.ParseRole(string(user.Role)),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify 驗證並解析 JWT 令牌；任何失敗一律回傳 ErrInvalidToken
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
