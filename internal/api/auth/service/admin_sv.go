package authService

import (
	"context"
	"errors"

	"SonicSavor/internal/api/auth"
	"SonicSavor/internal/entity"
	"github.com/sirupsen/logrus"
)

// SeedAdmin makes sure the configured admin exists and that its password
// matches the configured one.
func (s *adminDomainImpl) SeedAdmin(c context.Context, username string, password string) error {
	if username == "" || password == "" {
		s.log.Warn("Admin credentials not configured, skipping seed")
		return nil
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		return err
	}

	existing, err := repo.Admins.GetByUsername(c, username)
	switch {
	case err == nil:
		if s.bcrypt.ComparePassword(existing.Password, password) == nil {
			return nil
		}
		hashed, err := s.bcrypt.HashPassword(password)
		if err != nil {
			return err
		}
		if err := repo.Admins.UpdatePassword(c, existing.ID, hashed); err != nil {
			return err
		}
		s.log.WithFields(logrus.Fields{"username": username}).Info("Admin password rotated")
		return nil
	case !errors.Is(err, auth.ErrAdminNotFound):
		return err
	}

	hashed, err := s.bcrypt.HashPassword(password)
	if err != nil {
		return err
	}

	now := s.now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return err
	}

	if err := repo.Admins.Create(c, entity.AdminUser{
		ID:        id,
		Username:  username,
		Password:  hashed,
		CreatedAt: now,
	}); err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			return nil
		}
		return err
	}

	s.log.WithFields(logrus.Fields{"username": username}).Info("Admin account seeded")
	return nil
}
