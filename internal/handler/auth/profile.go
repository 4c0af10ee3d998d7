// File: internal/handler/auth/profile.go
package auth

import (
	"net/http"
	"strings"

	"contact-book/internal/api"
	"contact-book/internal/database"
	"contact-book/internal/middleware"
	"contact-book/internal/model"
	"contact-book/internal/service"

	"github.com/labstack/echo/v4"
)

// UpdateProfileHandler 更新當前使用者資料並重發反映新 claims 的令牌
// @Summary     Update profile
// @Description 更新姓名、Email、角色與密碼（密碼可留空），成功後回傳新令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.UpdateProfileRequest true "個人資料"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/profile [put]
func UpdateProfileHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFrom(c)

		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		user.Name = req.Name
		user.Email = strings.ToLower(req.Email)
		user.Role = model.ParseRole(req.Role)

		if err := updateUser(c.Request().Context(), db, user); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update profile"})
		}

		if req.Password != "" {
			hash, err := hashPassword(req.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
			}
			if err := updateUserPassword(c.Request().Context(), db, user.ID, hash); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update password"})
			}
		}

		// 角色或 Email 變更後舊令牌的 claims 已過時，重發一份
		token, err := tokens.Issue(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{
			Success: true,
			Message: "profile updated successfully",
			Token:   token,
			User:    api.NewUserResponse(user),
		})
	}
}
