package orderService

import (
	"context"
	"time"

	"SonicSavor/internal/entity"
	contextPkg "SonicSavor/pkg/context"
	"SonicSavor/pkg/rabbitmq"
	"SonicSavor/pkg/whatsapp"
	"github.com/sirupsen/logrus"
)

const notifyTimeout = 5 * time.Second

// notifier fans order events out to the kitchen and the customer. Delivery
// is best effort: failures are logged and never fail the request.
type notifier struct {
	log       *logrus.Logger
	publisher rabbitmq.IPublisher
	whatsapp  whatsapp.IWhatsappSender
}

func (n *notifier) orderPlaced(c context.Context, o entity.Order) {
	n.publish(c, "placed", o)

	if n.whatsapp == nil || !n.whatsapp.IsConnected() {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c), notifyTimeout)
	defer cancel()

	if err := n.whatsapp.SendMessage(ctx, o.PhoneNumber, whatsapp.OrderConfirmation(o.CustomerName, o.ID, o.Item)); err != nil {
		n.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"order_id":   o.ID,
			"error":      err.Error(),
		}).Warn("Failed to send WhatsApp order confirmation")
	}
}

func (n *notifier) statusChanged(c context.Context, o entity.Order) {
	n.publish(c, string(o.Status), o)
}

func (n *notifier) publish(c context.Context, event string, o entity.Order) {
	if n.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c), notifyTimeout)
	defer cancel()

	ticket := entity.KitchenTicket{
		OrderID:      o.ID,
		CustomerName: o.CustomerName,
		Item:         o.Item,
		Quantity:     o.Quantity,
		Status:       o.Status,
		PlacedAt:     o.CreatedAt,
	}

	if err := n.publisher.Publish(ctx, rabbitmq.OrdersExchange, rabbitmq.KitchenRoutingKey(event), ticket); err != nil {
		n.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"order_id":   o.ID,
			"event":      event,
			"error":      err.Error(),
		}).Warn("Failed to publish kitchen ticket")
	}
}
