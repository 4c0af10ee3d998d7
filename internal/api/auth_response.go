package api

// AuthResponse 登入、註冊與更新個人資料成功時的回應
// swagger:model api.AuthResponse
type AuthResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"Login successful"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
