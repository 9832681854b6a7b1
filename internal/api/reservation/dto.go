package reservation

import "SonicSavor/internal/entity"

// CreateReservationRequest arrives as query parameters.
type CreateReservationRequest struct {
	CustomerName string `query:"customer_name" validate:"required,max=255"`
	TimeSlot     string `query:"time_slot" validate:"required,max=255"`
	People       int    `query:"people" validate:"required,min=1,max=100"`
}

type CreateReservationResponse struct {
	Message       string `json:"message"`
	ReservationID string `json:"reservation_id"`
}

type ListReservationsResponse struct {
	Reservations []entity.Reservation `json:"reservations"`
}
