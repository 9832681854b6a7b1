package orderService

import (
	"context"
	"fmt"
	"strings"

	"SonicSavor/internal/api/order"
	"SonicSavor/internal/entity"
	contextPkg "SonicSavor/pkg/context"
	"github.com/sirupsen/logrus"
)

func (s *customerDomainImpl) PlaceOrder(c context.Context, req order.CreateOrderRequest) (order.CreateOrderResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return order.CreateOrderResponse{}, err
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	o := entity.Order{
		CustomerName: strings.TrimSpace(req.CustomerName),
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		Item:         strings.TrimSpace(req.Item),
		Quantity:     quantity,
		Status:       entity.OrderStatusPending,
		CreatedAt:    s.now(),
	}

	o.ID, err = repo.Orders.Create(c, o)
	if err != nil {
		return order.CreateOrderResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"order_id":   o.ID,
		"quantity":   o.Quantity,
	}).Info("Order placed")

	s.notifier.orderPlaced(c, o)

	return order.CreateOrderResponse{
		Message: "Order placed successfully",
		OrderID: o.ID,
	}, nil
}

// CancelOrder cancels an order on behalf of the caller who placed it. The
// name must match the one on the order and the order must still be inside
// the cancel window.
func (s *customerDomainImpl) CancelOrder(c context.Context, orderID int64, req order.CancelOrderRequest) (res order.MessageResponse, err error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return order.MessageResponse{}, err
	}
	defer func() {
		if err != nil {
			if rbErr := repo.Rollback(); rbErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      rbErr.Error(),
				}).Error("Failed to rollback cancel transaction")
			}
		}
	}()

	current, err := repo.Orders.GetByIDForUpdate(c, orderID)
	if err != nil {
		return order.MessageResponse{}, err
	}

	if !sameCustomer(current.CustomerName, req.CustomerName) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"order_id":   orderID,
		}).Warn("Cancel requested by a different customer")
		return order.MessageResponse{}, order.ErrCustomerMismatch
	}

	if current.Status == entity.OrderStatusCanceled {
		return order.MessageResponse{}, order.ErrAlreadyCanceled
	}

	if s.now().Sub(current.CreatedAt) > s.cancelWindow {
		return order.MessageResponse{}, order.ErrCancelWindowExpired
	}

	updated, err := repo.Orders.UpdateStatus(c, orderID, entity.OrderStatusCanceled)
	if err != nil {
		return order.MessageResponse{}, err
	}

	if err = repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit cancel transaction")
		return order.MessageResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"order_id":   orderID,
	}).Info("Order canceled by customer")

	s.notifier.statusChanged(c, updated)

	return order.MessageResponse{
		Message: fmt.Sprintf("Order #%d has been successfully cancelled.", orderID),
	}, nil
}

func sameCustomer(onOrder, given string) bool {
	return strings.EqualFold(strings.TrimSpace(onOrder), strings.TrimSpace(given))
}

