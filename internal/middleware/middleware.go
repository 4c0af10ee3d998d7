package middleware

import (
	"net/http"
	"strings"

	"contact-book/internal/api"
	"contact-book/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextUserKey 經過 RequireAuth 後掛載於 echo.Context 的身份索引鍵
const ContextUserKey = "user"

func extractClaims(c echo.Context, tokens *service.TokenService) (*service.Claims, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, false
	}
	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return nil, true
	}
	c.Set(ContextUserKey, claims)
	return claims, true
}

// RequireAuth 驗證 Bearer 令牌並將解析後的身份掛載至請求 context
// 缺少令牌與驗證失敗分別回 401，請求不再進入後續 handler
func RequireAuth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, presented := extractClaims(c, tokens)
			if claims == nil {
				msg := "no token provided"
				if presented {
					msg = "invalid or expired token"
				}
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: msg})
			}
			return next(c)
		}
	}
}

// RequireAdmin 在 RequireAuth 之上加驗角色，非 admin 回 403
// 必須與 RequireAuth 組合使用，這裡直接包覆以固定順序
func RequireAdmin(tokens *service.TokenService) echo.MiddlewareFunc {
	auth := RequireAuth(tokens)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return auth(func(c echo.Context) error {
			claims := c.Get(ContextUserKey).(*service.Claims)
			if !claims.Role.IsAdmin() {
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "admin access required"})
			}
			return next(c)
		})
	}
}

// ClaimsFrom 取出 RequireAuth 掛載的身份；未經認證的路由回傳 nil
func ClaimsFrom(c echo.Context) *service.Claims {
	claims, _ := c.Get(ContextUserKey).(*service.Claims)
	return claims
}
