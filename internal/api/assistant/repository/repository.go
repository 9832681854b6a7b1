package assistantRepository

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
		Documents: &documentRepository{q: db, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Documents interface {
		CreateDocument(ctx context.Context, doc entity.Document) error
		CreateChunks(ctx context.Context, chunks []entity.DocumentChunk) error
		Search(ctx context.Context, kind entity.DocumentKind, tsQuery string, limit int) ([]entity.DocumentChunk, error)
		Latest(ctx context.Context, kind entity.DocumentKind, limit int) ([]entity.DocumentChunk, error)
	}

	Commit   func() error
	Rollback func() error
}

type documentRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
