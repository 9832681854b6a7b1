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

func (s *adminDomainImpl) ListOrders(c context.Context) ([]entity.Order, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Orders.List(c)
}

func (s *adminDomainImpl) UpdateStatus(c context.Context, orderID int64, req order.UpdateOrderStatusRequest) (res order.UpdateOrderStatusResponse, err error) {
	requestID := contextPkg.GetRequestID(c)

	status := entity.OrderStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		return order.UpdateOrderStatusResponse{}, order.ErrInvalidStatus
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return order.UpdateOrderStatusResponse{}, err
	}
	defer func() {
		if err != nil {
			_ = repo.Rollback()
		}
	}()

	current, err := repo.Orders.GetByIDForUpdate(c, orderID)
	if err != nil {
		return order.UpdateOrderStatusResponse{}, err
	}

	if status == entity.OrderStatusCanceled && s.now().Sub(current.CreatedAt) > s.cancelWindow {
		return order.UpdateOrderStatusResponse{}, order.ErrCancelWindowExpired
	}

	updated, err := repo.Orders.UpdateStatus(c, orderID, status)
	if err != nil {
		return order.UpdateOrderStatusResponse{}, err
	}

	if err = repo.Commit(); err != nil {
		return order.UpdateOrderStatusResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"order_id":   orderID,
		"status":     status,
	}).Info("Order status updated")

	s.notifier.statusChanged(c, updated)

	return order.UpdateOrderStatusResponse{
		Message: fmt.Sprintf("Order #%d status updated to %s", updated.ID, updated.Status),
		Order:   updated,
	}, nil
}
