package reservationHandler

import (
	"time"

	"SonicSavor/internal/api/reservation"
	contextPkg "SonicSavor/pkg/context"
	"SonicSavor/pkg/handlerUtil"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ReservationHandler) HandleCreateReservation(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req reservation.CreateReservationRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, fiber.NewError(fiber.StatusBadRequest, err.Error()), ctx.Path(), "parse_query")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.reservationService.CreateReservation(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_reservation")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *ReservationHandler) HandleListReservations(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	reservations, err := h.reservationService.ListReservations(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_reservations")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, reservation.ListReservationsResponse{Reservations: reservations})
	}
}
