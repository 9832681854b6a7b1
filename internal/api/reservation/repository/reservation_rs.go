package reservationRepository

import (
	"context"
	"errors"

	"SonicSavor/internal/api/reservation"
	"SonicSavor/internal/entity"
	contextPkg "SonicSavor/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func (r *reservationRepository) NextSequence(c context.Context) (int64, error) {
	var seq int64
	if err := r.q.QueryRowxContext(c, queryNextReservationSeq).Scan(&seq); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Error("Failed to read reservation sequence")
		return 0, err
	}
	return seq, nil
}

func (r *reservationRepository) Create(c context.Context, res entity.Reservation) (entity.Reservation, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"code":          res.Code,
		"customer_name": res.CustomerName,
		"time_slot":     res.TimeSlot,
		"people":        res.People,
		"created_at":    res.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateReservation, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create reservation")
		return entity.Reservation{}, err
	}
	query = r.q.Rebind(query)

	var created entity.Reservation
	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&created); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"code":       res.Code,
			}).Warn("Reservation code already exists")
			return entity.Reservation{}, reservation.ErrReservationCodeTaken
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating reservation")
		return entity.Reservation{}, err
	}

	return created, nil
}

func (r *reservationRepository) List(c context.Context) ([]entity.Reservation, error) {
	requestID := contextPkg.GetRequestID(c)

	reservations := make([]entity.Reservation, 0)
	if err := sqlx.SelectContext(c, r.q, &reservations, queryListReservations); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List reservations execution err")
		return nil, err
	}

	return reservations, nil
}
