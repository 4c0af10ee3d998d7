package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required,min=6" example:"Secret123!"`
	Role     string `json:"role" form:"role" example:"user"`
}
