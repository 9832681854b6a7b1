package authService

import (
	"context"
	"errors"

	"SonicSavor/internal/api/auth"
	"SonicSavor/internal/entity"
	"SonicSavor/pkg/bcrypt"
	contextPkg "SonicSavor/pkg/context"
	jwtPkg "SonicSavor/pkg/jwt"
	"github.com/sirupsen/logrus"
)

func (s *sessionDomainImpl) Login(c context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.TokenResponse{}, err
	}

	admin, err := repo.Admins.GetByUsername(c, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrAdminNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"username":   req.Username,
			}).Warn("Login attempt for unknown admin")
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := s.bcrypt.ComparePassword(admin.Password, req.Password); err != nil {
		if errors.Is(err, bcrypt.ErrPasswordMismatch) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"username":   req.Username,
			}).Warn("Login attempt with wrong password")
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":       admin.ID,
		"username": admin.Username,
	}, s.tokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign access token")
		return auth.TokenResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"username":   admin.Username,
	}).Info("Admin logged in")

	return auth.TokenResponse{
		AccessToken:      token,
		TokenType:        "bearer",
		ExpiresInMinutes: s.tokenTTL.Minutes(),
	}, nil
}

func (s *sessionDomainImpl) Logout(c context.Context, admin entity.AdminLoginData) (auth.MessageResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	revoked := entity.RevokedToken{
		TokenID:   admin.TokenID,
		Username:  admin.Username,
		ExpiresAt: admin.ExpiresAt,
	}

	ttl := revoked.TTL(s.now())
	if ttl > 0 && s.denylist == nil {
		return auth.MessageResponse{}, auth.ErrDenylistDown
	}
	if ttl > 0 {
		if err := s.denylist.Set(c, jwtPkg.RevokedKey(revoked.TokenID), revoked.Username, ttl); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to store revoked token")
			return auth.MessageResponse{}, auth.ErrDenylistDown
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"username":   admin.Username,
	}).Info("Admin logged out")

	return auth.MessageResponse{Message: "Successfully logged out"}, nil
}
