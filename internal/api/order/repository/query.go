package orderRepository

const (
	orderColumns = `id, customer_name, phone_number, item, quantity, status, created_at, updated_at`

	queryCreateOrder = `
INSERT INTO orders (customer_name, phone_number, item, quantity, status, created_at, updated_at)
VALUES (:customer_name, :phone_number, :item, :quantity, :status, :created_at, :updated_at)
RETURNING id`

	queryGetOrderByID = `
SELECT ` + orderColumns + `
FROM orders
    WHERE id = :id`

	queryGetOrderByIDForUpdate = queryGetOrderByID + `
FOR UPDATE`

	queryListOrders = `
SELECT ` + orderColumns + `
FROM orders
ORDER BY created_at DESC, id DESC`

	queryUpdateOrderStatus = `
UPDATE orders
SET status = :status,
    updated_at = :updated_at
WHERE id = :id
RETURNING ` + orderColumns
)
