// File: internal/handler/contacts/update_contact.go
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

// UpdateContactHandler 更新聯絡人，換圖時舊圖交由 worker 背景刪除（僅限 admin）
// @Summary     Update a contact
// @Tags        contacts
// @Accept      multipart/form-data
// @Produce     json
// @Param       id       path     int    true  "聯絡人 ID"
// @Param       name     formData string true  "姓名"
// @Param       title    formData string false "職稱"
// @Param       category formData string false "分類"
// @Param       email    formData string false "Email"
// @Param       phone    formData string false "電話"
// @Param       company  formData string false "公司"
// @Param       address  formData string false "地址"
// @Param       image    formData file   false "頭像圖片"
// @Success     200 {object} api.ContactResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /contacts/{id} [put]
func UpdateContactHandler(db database.DB, uploads *upload.Store, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := contactID(c)
		if err != nil {
			return invalidID(c)
		}

		var req api.ContactRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		contact, err := getContactByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "contact not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch contact"})
		}

		newImage, err := saveImage(c, uploads)
		if err != nil {
			return imageError(c, err)
		}

		oldImage := contact.Image
		contact.Name = req.Name
		contact.Title = req.Title
		contact.Category = req.Category
		contact.Email = req.Email
		contact.Phone = req.Phone
		contact.Company = req.Company
		contact.Address = req.Address
		if newImage != "" {
			contact.Image = newImage
		}

		if err := updateContact(c.Request().Context(), db, contact); err != nil {
			if newImage != "" {
				uploads.Remove(newImage)
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update contact"})
		}

		if newImage != "" && oldImage != "" {
			wp.Submit(func() { uploads.Remove(oldImage) })
		}

		return c.JSON(http.StatusOK, api.ContactResponse{
			Success: true,
			Message: "contact updated successfully",
			Data:    contact,
		})
	}
}
