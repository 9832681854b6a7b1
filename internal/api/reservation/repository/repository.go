package reservationRepository

import (
	"context"

	"SonicSavor/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Reservations: &reservationRepository{q: db, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type Client struct {
	Reservations interface {
		NextSequence(ctx context.Context) (int64, error)
		Create(ctx context.Context, reservation entity.Reservation) (entity.Reservation, error)
		List(ctx context.Context) ([]entity.Reservation, error)
	}

	Commit   func() error
	Rollback func() error
}

type reservationRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
