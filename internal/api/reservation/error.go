package reservation

import (
	"net/http"

	"SonicSavor/pkg/response"
)

var (
	ErrReservationCodeTaken = response.NewError(http.StatusConflict, "reservation code already exists")
	ErrInvalidPartySize     = response.NewError(http.StatusBadRequest, "party size must be at least 1")
)
