package voiceService

import (
	"context"
	"strconv"
	"strings"

	"SonicSavor/internal/api/assistant"
	assistantService "SonicSavor/internal/api/assistant/service"
	"SonicSavor/internal/api/order"
	orderService "SonicSavor/internal/api/order/service"
	"SonicSavor/internal/api/reservation"
	reservationService "SonicSavor/internal/api/reservation/service"
	"SonicSavor/internal/dialogue"
)

var _ dialogue.Backend = (*localBackend)(nil)

// localBackend serves websocket dialogues from the services of this process
// instead of going back through HTTP. Errors keep their *response.Error
// form so the dialogue can map statuses the same way the HTTP client does.
type localBackend struct {
	orders       orderService.OrderService
	reservations reservationService.ReservationService
	assistant    assistantService.AssistantService
}

func NewLocalBackend(
	orders orderService.OrderService,
	reservations reservationService.ReservationService,
	answers assistantService.AssistantService,
) dialogue.Backend {
	return &localBackend{
		orders:       orders,
		reservations: reservations,
		assistant:    answers,
	}
}

func (b *localBackend) PlaceOrder(ctx context.Context, customerName, phoneNumber string, items []string) (string, error) {
	res, err := b.orders.Customer().PlaceOrder(ctx, order.CreateOrderRequest{
		CustomerName: customerName,
		PhoneNumber:  phoneNumber,
		Item:         strings.Join(items, ", "),
		Quantity:     len(items),
	})
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(res.OrderID, 10), nil
}

func (b *localBackend) MenuInquiry(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", assistant.ErrEmptyQuestion
	}
	return b.assistant.MenuInquiry(ctx, question)
}

func (b *localBackend) CreateReservation(ctx context.Context, customerName, timeSlot string, partySize int) (string, error) {
	if partySize < 1 {
		partySize = 1
	}

	res, err := b.reservations.CreateReservation(ctx, reservation.CreateReservationRequest{
		CustomerName: customerName,
		TimeSlot:     timeSlot,
		People:       partySize,
	})
	if err != nil {
		return "", err
	}
	return res.ReservationID, nil
}

func (b *localBackend) ResolveIssue(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", assistant.ErrEmptyQuestion
	}
	return b.assistant.ResolveIssue(ctx, text)
}

func (b *localBackend) CancelOrder(ctx context.Context, orderNumber, customerName string) (string, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(orderNumber), 10, 64)
	if err != nil || id <= 0 {
		return "", order.ErrOrderNotFound
	}

	res, err := b.orders.Customer().CancelOrder(ctx, id, order.CancelOrderRequest{CustomerName: customerName})
	if err != nil {
		return "", err
	}
	return res.Message, nil
}
