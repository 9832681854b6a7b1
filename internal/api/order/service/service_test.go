package orderService

import (
	"context"
	"errors"
	"testing"
	"time"

	"SonicSavor/internal/api/order"
	orderRepository "SonicSavor/internal/api/order/repository"
	"SonicSavor/internal/entity"
	"SonicSavor/pkg/log"
	"SonicSavor/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	orders map[int64]entity.Order
	nextID int64
}

func (f *fakeOrders) Create(_ context.Context, o entity.Order) (int64, error) {
	f.nextID++
	o.ID = f.nextID
	f.orders[o.ID] = o
	return o.ID, nil
}

func (f *fakeOrders) GetByID(_ context.Context, id int64) (entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return entity.Order{}, order.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrders) GetByIDForUpdate(c context.Context, id int64) (entity.Order, error) {
	return f.GetByID(c, id)
}

func (f *fakeOrders) List(context.Context) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id int64, status entity.OrderStatus) (entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return entity.Order{}, order.ErrOrderNotFound
	}
	o.Status = status
	f.orders[id] = o
	return o, nil
}

type fakeRepo struct {
	orders    *fakeOrders
	commits   int
	rollbacks int
}

func (r *fakeRepo) NewClient(bool) (orderRepository.Client, error) {
	return orderRepository.Client{
		Orders:   r.orders,
		Commit:   func() error { r.commits++; return nil },
		Rollback: func() error { r.rollbacks++; return nil },
	}, nil
}

type published struct {
	exchange string
	key      string
	payload  any
}

type fakePublisher struct {
	events []published
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, exchange, key string, payload any) error {
	p.events = append(p.events, published{exchange, key, payload})
	return p.err
}

func (p *fakePublisher) Close() {}

type fakeWhatsapp struct {
	to   []string
	text []string
}

func (w *fakeWhatsapp) SendMessage(_ context.Context, phone, message string) error {
	w.to = append(w.to, phone)
	w.text = append(w.text, message)
	return nil
}

func (w *fakeWhatsapp) Disconnect() error { return nil }
func (w *fakeWhatsapp) IsConnected() bool { return true }

var placedAt = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestService(now time.Time, opts ...Option) (OrderService, *fakeRepo) {
	repo := &fakeRepo{orders: &fakeOrders{orders: map[int64]entity.Order{
		17: {ID: 17, CustomerName: "Sam Lee", PhoneNumber: "0812", Item: "burger", Quantity: 1, Status: entity.OrderStatusPending, CreatedAt: placedAt},
		18: {ID: 18, CustomerName: "Ann", Item: "soup", Quantity: 1, Status: entity.OrderStatusCanceled, CreatedAt: placedAt},
	}, nextID: 100}}

	svc := New(log.NewDiscardLogger(), repo, DefaultCancelWindow, opts...).(*orderService)
	clock := func() time.Time { return now }
	svc.customerDomain.(*customerDomainImpl).now = clock
	svc.adminDomain.(*adminDomainImpl).now = clock

	return svc, repo
}

func TestPlaceOrder(t *testing.T) {
	publisher := &fakePublisher{}
	wa := &fakeWhatsapp{}
	svc, repo := newTestService(placedAt, WithPublisher(publisher), WithWhatsapp(wa))

	res, err := svc.Customer().PlaceOrder(context.Background(), order.CreateOrderRequest{
		CustomerName: " Sam ",
		PhoneNumber:  "0812",
		Item:         "burger, fries",
	})
	require.NoError(t, err)

	assert.Equal(t, "Order placed successfully", res.Message)
	assert.Equal(t, int64(101), res.OrderID)

	stored := repo.orders.orders[101]
	assert.Equal(t, "Sam", stored.CustomerName)
	assert.Equal(t, 1, stored.Quantity)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "orders_topic", publisher.events[0].exchange)
	assert.Equal(t, "kitchen.order.placed", publisher.events[0].key)

	require.Len(t, wa.to, 1)
	assert.Equal(t, "0812", wa.to[0])
	assert.Contains(t, wa.text[0], "#101")
}

func TestPlaceOrder_PublishFailureIgnored(t *testing.T) {
	svc, _ := newTestService(placedAt, WithPublisher(&fakePublisher{err: errors.New("broker down")}))

	res, err := svc.Customer().PlaceOrder(context.Background(), order.CreateOrderRequest{
		CustomerName: "Sam", PhoneNumber: "1", Item: "tea", Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(101), res.OrderID)
}

func TestCancelOrder(t *testing.T) {
	publisher := &fakePublisher{}
	svc, repo := newTestService(placedAt.Add(4*time.Minute), WithPublisher(publisher))

	res, err := svc.Customer().CancelOrder(context.Background(), 17, order.CancelOrderRequest{CustomerName: "  sam LEE "})
	require.NoError(t, err)

	assert.Equal(t, "Order #17 has been successfully cancelled.", res.Message)
	assert.Equal(t, entity.OrderStatusCanceled, repo.orders.orders[17].Status)
	assert.Equal(t, 1, repo.commits)
	assert.Equal(t, 0, repo.rollbacks)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, "kitchen.order.canceled", publisher.events[0].key)
}

func TestCancelOrder_Failures(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		cust    string
		elapsed time.Duration
		want    error
		status  int
	}{
		{"missing order", 99, "Sam Lee", time.Minute, order.ErrOrderNotFound, 404},
		{"different customer", 17, "Bob", time.Minute, order.ErrCustomerMismatch, 403},
		{"already canceled", 18, "Ann", time.Minute, order.ErrAlreadyCanceled, 400},
		{"past window", 17, "Sam Lee", 6 * time.Minute, order.ErrCancelWindowExpired, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(placedAt.Add(tt.elapsed))

			_, err := svc.Customer().CancelOrder(context.Background(), tt.id, order.CancelOrderRequest{CustomerName: tt.cust})
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.status, response.StatusOf(err))
			assert.Equal(t, 1, repo.rollbacks)
			assert.Equal(t, 0, repo.commits)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newTestService(placedAt.Add(time.Hour))

	res, err := svc.Admin().UpdateStatus(context.Background(), 17, order.UpdateOrderStatusRequest{Status: " Delivered "})
	require.NoError(t, err)
	assert.Equal(t, "Order #17 status updated to delivered", res.Message)
	assert.Equal(t, entity.OrderStatusDelivered, res.Order.Status)
}

func TestUpdateStatus_Rejects(t *testing.T) {
	svc, _ := newTestService(placedAt.Add(10 * time.Minute))

	_, err := svc.Admin().UpdateStatus(context.Background(), 17, order.UpdateOrderStatusRequest{Status: "eaten"})
	assert.ErrorIs(t, err, order.ErrInvalidStatus)

	_, err = svc.Admin().UpdateStatus(context.Background(), 17, order.UpdateOrderStatusRequest{Status: "canceled"})
	assert.ErrorIs(t, err, order.ErrCancelWindowExpired)

	_, err = svc.Admin().UpdateStatus(context.Background(), 99, order.UpdateOrderStatusRequest{Status: "ready"})
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
