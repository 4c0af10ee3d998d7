// File: internal/handler/contacts/delete_contact.go
package contacts

import (
	"errors"
	"net/http"

	"contact-book/internal/api"
	"contact-book/internal/database"
	"contact-book/internal/store"
	"contact-book/internal/upload"
	"contact-book/internal/worker"

	"github.com/labstack/echo/v4"
)

// DeleteContactHandler 刪除聯絡人並清除其頭像檔案（僅限 admin）
// @Summary     Delete a contact
// @Tags        contacts
// @Produce     json
// @Param       id path int true "聯絡人 ID"
// @Success     200 {object} api.ContactResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /contacts/{id} [delete]
func DeleteContactHandler(db database.DB, uploads *upload.Store, wp worker.Pool) echo.HandlerFunc {
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

		if err := deleteContact(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete contact"})
		}

		if img := contact.Image; img != "" {
			wp.Submit(func() { uploads.Remove(img) })
		}

		return c.JSON(http.StatusOK, api.ContactResponse{
			Success: true,
			Message: "contact deleted successfully",
		})
	}
}
