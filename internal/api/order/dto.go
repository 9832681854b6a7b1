package order

import "SonicSavor/internal/entity"

type CreateOrderRequest struct {
	CustomerName string `json:"customer_name" validate:"required,max=255"`
	PhoneNumber  string `json:"phone_number" validate:"required,max=32"`
	Item         string `json:"item" validate:"required"`
	Quantity     int    `json:"quantity" validate:"omitempty,min=1"`
}

type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

type CancelOrderRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdateOrderStatusResponse struct {
	Message string       `json:"message"`
	Order   entity.Order `json:"order"`
}

type ListOrdersResponse struct {
	Orders []entity.Order `json:"orders"`
}
