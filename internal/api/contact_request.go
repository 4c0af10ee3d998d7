package api

// ContactRequest 建立與更新聯絡人共用的 multipart form 欄位
// 圖片以獨立的 image part 上傳，不在此結構內
// swagger:model api.ContactRequest
type ContactRequest struct {
	Name     string `json:"name" form:"name" validate:"required" example:"Bob"`
	Title    string `json:"title" form:"title" example:"Engineer"`
	Category string `json:"category" form:"category" example:"work"`
	Email    string `json:"email" form:"email" validate:"omitempty,email" example:"bob@example.com"`
	Phone    string `json:"phone" form:"phone" example:"+886 912 345 678"`
	Company  string `json:"company" form:"company" example:"Acme"`
	Address  string `json:"address" form:"address" example:"Taipei"`
}
