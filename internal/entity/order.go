package entity

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

func (s OrderStatus) Valid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Order is a placed order. Item holds every spoken item joined by ", " and
// Quantity the number of items.
type Order struct {
	ID           int64       `json:"id" db:"id"`
	CustomerName string      `json:"customer_name" db:"customer_name"`
	PhoneNumber  string      `json:"phone_number" db:"phone_number"`
	Item         string      `json:"item" db:"item"`
	Quantity     int         `json:"quantity" db:"quantity"`
	Status       OrderStatus `json:"status" db:"status"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// KitchenTicket is published to the kitchen exchange on every order event.
type KitchenTicket struct {
	OrderID      int64       `json:"order_id"`
	CustomerName string      `json:"customer_name"`
	Item         string      `json:"item"`
	Quantity     int         `json:"quantity"`
	Status       OrderStatus `json:"status"`
	PlacedAt     time.Time   `json:"placed_at"`
}
