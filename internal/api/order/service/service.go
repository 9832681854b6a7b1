package orderService

import (
	"context"
	"time"

	"SonicSavor/internal/api/order"
	orderRepository "SonicSavor/internal/api/order/repository"
	"SonicSavor/internal/entity"
	"SonicSavor/pkg/rabbitmq"
	"SonicSavor/pkg/whatsapp"
	"github.com/sirupsen/logrus"
)

// DefaultCancelWindow is how long after placement an order may be canceled.
const DefaultCancelWindow = 5 * time.Minute

type OrderService interface {
	Customer() CustomerDomain
	Admin() AdminDomain
}

type CustomerDomain interface {
	PlaceOrder(c context.Context, req order.CreateOrderRequest) (order.CreateOrderResponse, error)
	CancelOrder(c context.Context, orderID int64, req order.CancelOrderRequest) (order.MessageResponse, error)
}

type AdminDomain interface {
	ListOrders(c context.Context) ([]entity.Order, error)
	UpdateStatus(c context.Context, orderID int64, req order.UpdateOrderStatusRequest) (order.UpdateOrderStatusResponse, error)
}

type orderService struct {
	customerDomain CustomerDomain
	adminDomain    AdminDomain
}

func (s *orderService) Customer() CustomerDomain {
	return s.customerDomain
}

func (s *orderService) Admin() AdminDomain {
	return s.adminDomain
}

type Option func(*notifier)

// WithPublisher sends kitchen tickets for every order event.
func WithPublisher(publisher rabbitmq.IPublisher) Option {
	return func(n *notifier) {
		n.publisher = publisher
	}
}

// WithWhatsapp confirms placed orders to the caller's phone.
func WithWhatsapp(sender whatsapp.IWhatsappSender) Option {
	return func(n *notifier) {
		n.whatsapp = sender
	}
}

type customerDomainImpl struct {
	log          *logrus.Logger
	repo         orderRepository.Repository
	notifier     *notifier
	cancelWindow time.Duration
	now          func() time.Time
}

type adminDomainImpl struct {
	log          *logrus.Logger
	repo         orderRepository.Repository
	notifier     *notifier
	cancelWindow time.Duration
	now          func() time.Time
}

func New(log *logrus.Logger, repo orderRepository.Repository, cancelWindow time.Duration, opts ...Option) OrderService {
	if cancelWindow <= 0 {
		cancelWindow = DefaultCancelWindow
	}

	n := &notifier{log: log}
	for _, opt := range opts {
		opt(n)
	}

	return &orderService{
		customerDomain: &customerDomainImpl{log: log, repo: repo, notifier: n, cancelWindow: cancelWindow, now: time.Now},
		adminDomain:    &adminDomainImpl{log: log, repo: repo, notifier: n, cancelWindow: cancelWindow, now: time.Now},
	}
}
