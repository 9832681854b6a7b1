package orderRepository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"SonicSavor/internal/api/order"
	"SonicSavor/internal/entity"
	"SonicSavor/pkg/log"
	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderCols = []string{"id", "customer_name", "phone_number", "item", "quantity", "status", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })

	return New(sqlx.NewDb(raw, "postgres"), log.NewDiscardLogger()), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs("Sam", "0812", "burger, fries", 2, entity.OrderStatusPending, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(17))

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	id, err := client.Orders.Create(context.Background(), entity.Order{
		CustomerName: "Sam",
		PhoneNumber:  "0812",
		Item:         "burger, fries",
		Quantity:     2,
		Status:       entity.OrderStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(orderCols))

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	_, err = client.Orders.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestGetByIDForUpdate_InTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Now().Add(-time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(17)).
		WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow(17, "Sam", "0812", "burger", 1, "pending", created, created))
	mock.ExpectCommit()

	client, err := repo.NewClient(true)
	require.NoError(t, err)

	o, err := client.Orders.GetByIDForUpdate(context.Background(), 17)
	require.NoError(t, err)
	require.NoError(t, client.Commit())

	assert.Equal(t, "Sam", o.CustomerName)
	assert.Equal(t, entity.OrderStatusPending, o.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow(2, "Ann", "1", "soup", 1, "ready", now, now).
			AddRow(1, "Sam", "2", "burger", 1, "pending", now.Add(-time.Hour), now))

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	orders, err := client.Orders.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, entity.OrderStatusReady, orders[0].Status)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE orders")).
		WithArgs(entity.OrderStatusCanceled, sqlmock.AnyArg(), int64(17)).
		WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow(17, "Sam", "0812", "burger", 1, "canceled", now, now))

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	o, err := client.Orders.UpdateStatus(context.Background(), 17, entity.OrderStatusCanceled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCanceled, o.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
