package middleware

import (
	"context"
	"time"

	"SonicSavor/internal/entity"
	jwtPkg "SonicSavor/pkg/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const AdminLocalsKey = "admin"

func unauthorized(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized, access token invalid or expired",
	})
}

func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)

	claims, err := jwtPkg.VerifyTokenHeader(ctx, jwtPkg.AccessTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"client_ip":  ctx.IP(),
			"error":      err.Error(),
		}).Warn("Token verification failed")
		return unauthorized(ctx)
	}

	if m.denylist != nil {
		c, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
		defer cancel()

		revoked, err := m.denylist.Exists(c, jwtPkg.RevokedKey(claims.TokenID))
		if err != nil {
			m.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to check token denylist")
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Authentication temporarily unavailable",
			})
		}
		if revoked {
			m.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"username":   claims.Username,
			}).Warn("Revoked token used")
			return unauthorized(ctx)
		}
	}

	ctx.Locals(AdminLocalsKey, entity.AdminLoginData{
		ID:        claims.Subject,
		Username:  claims.Username,
		TokenID:   claims.TokenID,
		ExpiresAt: claims.ExpiresAt,
	})

	m.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"username":   claims.Username,
	}).Debug("Authentication successful")

	return ctx.Next()
}
