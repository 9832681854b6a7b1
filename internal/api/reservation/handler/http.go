package reservationHandler

import (
	reservationService "SonicSavor/internal/api/reservation/service"
	"SonicSavor/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReservationHandler struct {
	log                *logrus.Logger
	reservationService reservationService.ReservationService
	validator          *validator.Validate
	middleware         middleware.Middleware
}

func New(
	log *logrus.Logger,
	rs reservationService.ReservationService,
	validate *validator.Validate,
	middleware middleware.Middleware) *ReservationHandler {
	return &ReservationHandler{
		log:                log,
		reservationService: rs,
		validator:          validate,
		middleware:         middleware,
	}
}

func (h *ReservationHandler) Start(srv fiber.Router) {
	srv.Post("/reservation", h.middleware.NewRateLimiter, h.HandleCreateReservation)

	admin := srv.Group("/admin")
	admin.Get("/reservations", h.middleware.NewTokenMiddleware, h.HandleListReservations)
}
