// File: internal/handler/auth/auth.go
package auth

import (
	"contact-book/internal/service"
	"contact-book/internal/store"
)

// 測試可覆寫下列變數
var (
	hashPassword       = service.HashPassword
	authenticateUser   = service.AuthenticateUser
	createUser         = store.CreateUser
	getUserByEmail     = store.GetUserByEmail
	getUserByID        = store.GetUserByID
	emailExists        = store.EmailExists
	updateUser         = store.UpdateUser
	updateUserPassword = store.UpdateUserPassword
)
