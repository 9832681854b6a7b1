package authRepository

import (
	"context"
	"database/sql"
	"errors"

	"SonicSavor/internal/api/auth"
	"SonicSavor/internal/entity"
	contextPkg "SonicSavor/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func (r *adminRepository) Create(c context.Context, admin entity.AdminUser) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryCreateAdmin, admin)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create admin")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"username":   admin.Username,
			}).Warn("Admin username already exists")
			return auth.ErrUsernameTaken
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating admin")
		return err
	}

	return nil
}

func (r *adminRepository) GetByUsername(c context.Context, username string) (entity.AdminUser, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryGetAdminByUsername, map[string]interface{}{"username": username})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUsername named query preparation err")
		return entity.AdminUser{}, err
	}
	query = r.q.Rebind(query)

	var admin entity.AdminUser
	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&admin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.AdminUser{}, auth.ErrAdminNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUsername execution err")
		return entity.AdminUser{}, err
	}

	return admin, nil
}

func (r *adminRepository) UpdatePassword(c context.Context, id string, password string) error {
	query, args, err := sqlx.Named(queryUpdateAdminPassword, map[string]interface{}{
		"id":       id,
		"password": password,
	})
	if err != nil {
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Database error when updating admin password")
		return err
	}

	return nil
}
