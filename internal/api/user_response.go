package api

import (
	"time"

	"contact-book/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int        `json:"id" example:"1"`
	Name      string     `json:"name" example:"Alice"`
	Email     string     `json:"email" example:"alice@example.com"`
	Role      model.Role `json:"role" example:"user"`
	CreatedAt time.Time  `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}

// NewUserResponse 由 model.User 組裝回應
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
