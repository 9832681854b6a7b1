package auth

import (
	"net/http"

	"SonicSavor/pkg/response"
)

var (
	ErrInvalidCredentials = response.NewError(http.StatusUnauthorized, "Incorrect username or password")
	ErrAdminNotFound      = response.NewError(http.StatusNotFound, "admin not found")
	ErrUsernameTaken      = response.NewError(http.StatusConflict, "username already exists")
	ErrDenylistDown       = response.NewError(http.StatusServiceUnavailable, "could not revoke token")
)
