package api

// UpdateProfileRequest 更新個人資料；Password 為空時保留原密碼
// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name     string `json:"name" form:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Role     string `json:"role" form:"role" example:"user"`
	Password string `json:"password" form:"password" validate:"omitempty,min=6" example:"Secret123!"`
}
