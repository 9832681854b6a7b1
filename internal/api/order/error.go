package order

import (
	"net/http"

	"SonicSavor/pkg/response"
)

var (
	ErrOrderNotFound       = response.NewError(http.StatusNotFound, "Order not found")
	ErrCustomerMismatch    = response.NewError(http.StatusForbidden, "Customer name does not match the order")
	ErrCancelWindowExpired = response.NewError(http.StatusBadRequest, "Order cannot be canceled after 5 minutes")
	ErrAlreadyCanceled     = response.NewError(http.StatusBadRequest, "Order is already canceled")
	ErrInvalidStatus       = response.NewError(http.StatusBadRequest, "Invalid order status")
	ErrInvalidOrderID      = response.NewError(http.StatusBadRequest, "Invalid order id")
)
