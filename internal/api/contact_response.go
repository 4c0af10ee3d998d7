package api

import "contact-book/internal/model"

// swagger:model api.ContactResponse
type ContactResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message,omitempty" example:"Contact created successfully"`
	Data    *model.Contact `json:"data,omitempty"`
}

// swagger:model api.ContactListResponse
type ContactListResponse struct {
	Success bool            `json:"success" example:"true"`
	Data    []model.Contact `json:"data"`
}
