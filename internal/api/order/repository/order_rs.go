package orderRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"SonicSavor/internal/api/order"
	"SonicSavor/internal/entity"
	contextPkg "SonicSavor/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *orderRepository) Create(c context.Context, o entity.Order) (int64, error) {
	requestID := contextPkg.GetRequestID(c)
	now := time.Now()

	argsKV := map[string]interface{}{
		"customer_name": o.CustomerName,
		"phone_number":  o.PhoneNumber,
		"item":          o.Item,
		"quantity":      o.Quantity,
		"status":        o.Status,
		"created_at":    now,
		"updated_at":    now,
	}

	query, args, err := sqlx.Named(queryCreateOrder, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create order")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating order")
		return 0, err
	}

	return id, nil
}

func (r *orderRepository) GetByID(c context.Context, id int64) (entity.Order, error) {
	return r.getOne(c, queryGetOrderByID, id)
}

// GetByIDForUpdate locks the row until the surrounding transaction ends.
func (r *orderRepository) GetByIDForUpdate(c context.Context, id int64) (entity.Order, error) {
	return r.getOne(c, queryGetOrderByIDForUpdate, id)
}

func (r *orderRepository) getOne(c context.Context, namedQuery string, id int64) (entity.Order, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(namedQuery, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Order{}, err
	}
	query = r.q.Rebind(query)

	var o entity.Order
	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&o); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"order_id":   id,
			}).Warn("GetByID no rows found")
			return entity.Order{}, order.ErrOrderNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Order{}, err
	}

	return o, nil
}

func (r *orderRepository) List(c context.Context) ([]entity.Order, error) {
	requestID := contextPkg.GetRequestID(c)

	rows, err := r.q.QueryxContext(c, queryListOrders)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List orders execution err")
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		var o entity.Order
		if err := rows.StructScan(&o); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("List orders scan err")
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *orderRepository) UpdateStatus(c context.Context, id int64, status entity.OrderStatus) (entity.Order, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id":         id,
		"status":     status,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateOrderStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateStatus")
		return entity.Order{}, err
	}
	query = r.q.Rebind(query)

	var o entity.Order
	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&o); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, order.ErrOrderNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating order status")
		return entity.Order{}, err
	}

	return o, nil
}
