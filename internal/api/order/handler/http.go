package orderHandler

import (
	orderService "SonicSavor/internal/api/order/service"
	"SonicSavor/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	log          *logrus.Logger
	orderService orderService.OrderService
	validator    *validator.Validate
	middleware   middleware.Middleware
}

func New(
	log *logrus.Logger,
	os orderService.OrderService,
	validate *validator.Validate,
	middleware middleware.Middleware) *OrderHandler {
	return &OrderHandler{
		log:          log,
		orderService: os,
		validator:    validate,
		middleware:   middleware,
	}
}

func (h *OrderHandler) Start(srv fiber.Router) {
	srv.Post("/order", h.middleware.NewRateLimiter, h.HandlePlaceOrder)

	customer := srv.Group("/customer")
	customer.Patch("/orders/:id/cancel", h.middleware.NewRateLimiter, h.HandleCancelOrder)

	admin := srv.Group("/admin")
	admin.Get("/orders", h.middleware.NewTokenMiddleware, h.HandleListOrders)
	admin.Patch("/orders/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateOrderStatus)
}
