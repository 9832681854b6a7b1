package handlerUtil

import (
	"errors"

	jwtPkg "SonicSavor/pkg/jwt"
	"SonicSavor/pkg/log"
	"SonicSavor/pkg/response"
	"SonicSavor/pkg/utils"
	"github.com/gofiber/fiber/v2"
	fiberUtils "github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// knownError maps a shared sentinel from pkg/ to a client facing reply.
type knownError struct {
	err     error
	status  int
	message string
	code    string
}

var knownErrors = []knownError{
	{utils.ErrNoFile, fiber.StatusBadRequest, "No file uploaded", "NO_FILE"},
	{utils.ErrFileTooLarge, fiber.StatusBadRequest, "File too large. Maximum size is 5MB.", "FILE_TOO_LARGE"},
	{utils.ErrUnsupportedFile, fiber.StatusBadRequest, "Unsupported file type. Only .txt and .md are allowed.", "UNSUPPORTED_FILE"},
	{jwtPkg.ErrEmptyHeader, fiber.StatusUnauthorized, "Unauthorized, access token invalid or expired", "UNAUTHORIZED"},
	{jwtPkg.ErrInvalidFormat, fiber.StatusUnauthorized, "Unauthorized, access token invalid or expired", "UNAUTHORIZED"},
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": respErr.Err.Error()})
	}

	for _, known := range knownErrors {
		if errors.Is(err, known.err) {
			h.logger.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
				"path":       path,
				"operation":  operation,
			}).Warn(known.message)
			return c.Status(known.status).JSON(ErrorResponse{
				Error: known.message,
				Code:  known.code,
			})
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		}).Warn("Request rejected")
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(fiberUtils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
