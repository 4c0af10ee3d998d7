// File: internal/handler/contacts/get_contact.go
package contacts

import (
	"errors"
	"net/http"

	"contact-book/internal/api"
	"contact-book/internal/database"
	"contact-book/internal/store"

	"github.com/labstack/echo/v4"
)

// GetContactHandler 取得單一聯絡人
// @Summary     Get a contact by ID
// @Tags        contacts
// @Produce     json
// @Param       id path int true "聯絡人 ID"
// @Success     200 {object} api.ContactResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /contacts/{id} [get]
func GetContactHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := contactID(c)
		if err != nil {
			return invalidID(c)
		}

		contact, err := getContactByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "contact not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch contact"})
		}
		return c.JSON(http.StatusOK, api.ContactResponse{Success: true, Data: contact})
	}
}
