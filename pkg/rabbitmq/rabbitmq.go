package rabbitmq

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	OrdersExchange        = "orders_topic"
	NotificationsExchange = "notifications_fanout"
	KitchenQueue          = "kitchen.q"
	NotificationsQueue    = "notifications.q"
)

// IPublisher sends order events to the kitchen and notification consumers.
type IPublisher interface {
	Publish(ctx context.Context, exchange, key string, payload any) error
	Close()
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Client struct {
	conn *amqp.Connection
	ch   channel
}

func Dial(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareAll(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Client{conn: conn, ch: ch}, nil
}

func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func declareAll(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(OrdersExchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}
	if err := ch.ExchangeDeclare(NotificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		return err
	}
	if err := ch.ExchangeDeclare("dlx", "direct", true, false, false, false, nil); err != nil {
		return err
	}

	_, err := ch.QueueDeclare(KitchenQueue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    "dlx",
		"x-dead-letter-routing-key": "dlq",
	})
	if err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(NotificationsQueue, true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare("dlq", true, false, false, false, nil); err != nil {
		return err
	}

	if err := ch.QueueBind(KitchenQueue, "kitchen.*.*", OrdersExchange, false, nil); err != nil {
		return err
	}
	return ch.QueueBind(NotificationsQueue, "", NotificationsExchange, false, nil)
}

func (c *Client) Publish(ctx context.Context, exchange, key string, payload any) error {
	body, err := jsoniter.Marshal(payload)
	if err != nil {
		return err
	}

	return c.ch.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Body:         body,
	})
}

// KitchenRoutingKey matches the kitchen.*.* binding, e.g. kitchen.order.placed.
func KitchenRoutingKey(event string) string {
	return "kitchen.order." + event
}
