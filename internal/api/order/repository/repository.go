package orderRepository

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
		Orders:   &orderRepository{q: db, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Orders interface {
		Create(ctx context.Context, order entity.Order) (int64, error)
		GetByID(ctx context.Context, id int64) (entity.Order, error)
		GetByIDForUpdate(ctx context.Context, id int64) (entity.Order, error)
		List(ctx context.Context) ([]entity.Order, error)
		UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (entity.Order, error)
	}

	Commit   func() error
	Rollback func() error
}

type orderRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
