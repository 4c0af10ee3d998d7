// File: internal/handler/contacts/list_contacts.go
package contacts

import (
	"net/http"

	"contact-book/internal/api"
	"contact-book/internal/database"

	"github.com/labstack/echo/v4"
)

// ListContactsHandler 依建立時間新到舊列出所有聯絡人
// @Summary     List contacts
// @Tags        contacts
// @Produce     json
// @Success     200 {object} api.ContactListResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /contacts [get]
func ListContactsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		contacts, err := listContacts(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch contacts"})
		}
		return c.JSON(http.StatusOK, api.ContactListResponse{Success: true, Data: contacts})
	}
}
