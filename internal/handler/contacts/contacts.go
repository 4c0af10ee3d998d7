// File: internal/handler/contacts/contacts.go
package contacts

import (
	"net/http"
	"strconv"

	"contact-book/internal/api"
	"contact-book/internal/store"

	"github.com/labstack/echo/v4"
)

// 測試可覆寫下列變數
var (
	listContacts   = store.ListContacts
	getContactByID = store.GetContactByID
	createContact  = store.CreateContact
	updateContact  = store.UpdateContact
	deleteContact  = store.DeleteContact
)

func contactID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest)
	}
	return id, nil
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid contact id"})
}
