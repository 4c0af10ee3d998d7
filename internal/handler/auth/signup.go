// File: internal/handler/auth/signup.go
package auth

import (
	"net/http"
	"strings"

	"contact-book/internal/api"
	"contact-book/internal/database"
	"contact-book/internal/model"
	"contact-book/internal/service"

	"github.com/labstack/echo/v4"
)

// SignupHandler 建立新帳號並直接發行令牌
// @Summary     Sign up
// @Description 以 email/password 建立帳號 (Email 會自動轉小寫)，成功回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.SignupRequest true "註冊資料"
// @Success     201 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/signup [post]
func SignupHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		exists, err := emailExists(c.Request().Context(), db, req.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "signup failed"})
		}
		if exists {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "user already exists"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Email:        req.Email,
			PasswordHash: hash,
			Role:         model.ParseRole(req.Role),
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "signup failed"})
		}

		token, err := tokens.Issue(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusCreated, api.AuthResponse{
			Success: true,
			Message: "user created successfully",
			Token:   token,
			User:    api.NewUserResponse(user),
		})
	}
}
