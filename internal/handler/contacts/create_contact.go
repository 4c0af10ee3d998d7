// File: internal/handler/contacts/create_contact.go
package contacts

import (
	"errors"
	"net/http"

	"contact-book/internal/api"
	"contact-book/internal/database"
	"contact-book/internal/middleware"
	"contact-book/internal/model"
	"contact-book/internal/upload"

	"github.com/labstack/echo/v4"
)

// CreateContactHandler 建立聯絡人，可附帶 image part 上傳頭像（僅限 admin）
// @Summary     Create a contact
// @Tags        contacts
// @Accept      multipart/form-data
// @Produce     json
// @Param       name     formData string true  "姓名"
// @Param       title    formData string false "職稱"
// @Param       category formData string false "分類"
// @Param       email    formData string false "Email"
// @Param       phone    formData string false "電話"
// @Param       company  formData string false "公司"
// @Param       address  formData string false "地址"
// @Param       image    formData file   false "頭像圖片"
// @Success     201 {object} api.ContactResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /contacts [post]
func CreateContactHandler(db database.DB, uploads *upload.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ContactRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		imagePath, err := saveImage(c, uploads)
		if err != nil {
			return imageError(c, err)
		}

		claims := middleware.ClaimsFrom(c)
		contact, err := createContact(c.Request().Context(), db, &model.Contact{
			Name:     req.Name,
			Title:    req.Title,
			Category: req.Category,
			Email:    req.Email,
			Phone:    req.Phone,
			Company:  req.Company,
			Address:  req.Address,
			Image:    imagePath,
			UserID:   claims.UserID,
		})
		if err != nil {
			// 寫入失敗時清掉剛存的圖片
			if imagePath != "" {
				uploads.Remove(imagePath)
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create contact"})
		}

		return c.JSON(http.StatusCreated, api.ContactResponse{
			Success: true,
			Message: "contact created successfully",
			Data:    contact,
		})
	}
}

// saveImage 儲存選擇性上傳的 image part，未附檔回傳空路徑
func saveImage(c echo.Context, uploads *upload.Store) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	return uploads.Save(fh)
}

func imageError(c echo.Context, err error) error {
	if errors.Is(err, upload.ErrFormat) || errors.Is(err, upload.ErrTooLarge) {
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store image"})
}
