package assistantHandler

import (
	assistantService "SonicSavor/internal/api/assistant/service"
	"SonicSavor/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	assistantService assistantService.AssistantService
	validator        *validator.Validate
	middleware       middleware.Middleware
}

func New(
	log *logrus.Logger,
	as assistantService.AssistantService,
	validate *validator.Validate,
	middleware middleware.Middleware) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		assistantService: as,
		validator:        validate,
		middleware:       middleware,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	srv.Post("/menu-inquiry", h.middleware.NewRateLimiter, h.HandleMenuInquiry)
	srv.Post("/resolve-issue", h.middleware.NewRateLimiter, h.HandleResolveIssue)
	srv.Get("/location", h.HandleLocation)

	admin := srv.Group("/admin")
	admin.Post("/upload-document", h.middleware.NewTokenMiddleware, h.HandleUploadDocument)
}
