package dialogue

import (
	"context"
	"net/http"
	"time"

	"SonicSavor/pkg/response"
)

// Backend is the remote service the dialogue submits drafts to. Rejections
// carrying an HTTP status should be *response.Error values so the order
// verification path can map them.
type Backend interface {
	PlaceOrder(ctx context.Context, customerName, phoneNumber string, items []string) (orderID string, err error)
	MenuInquiry(ctx context.Context, question string) (answer string, err error)
	CreateReservation(ctx context.Context, customerName, timeSlot string, partySize int) (reservationID string, err error)
	ResolveIssue(ctx context.Context, text string) (answer string, err error)
	CancelOrder(ctx context.Context, orderNumber, customerName string) (message string, err error)
}

// orderIssueMessage maps a rejected cancellation to what the caller hears.
func orderIssueMessage(err error, orderNumber string) string {
	switch response.StatusOf(err) {
	case http.StatusNotFound:
		return msgOrderNotFound(orderNumber)
	case http.StatusForbidden:
		return msgOrderIssueMismatch
	case http.StatusBadRequest:
		if detail := response.Detail(err); detail != "" {
			return detail
		}
		return msgOrderIssueNotModified
	default:
		return msgOrderIssueFailed
	}
}

// call runs fn under the remote timeout with status set to processing, and
// records its duration.
func (m *Machine) call(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	m.session.SetStatus(StatusProcessing)

	c, cancel := withOptionalTimeout(ctx, m.cfg.RemoteTimeout)
	defer cancel()

	start := time.Now()
	err := fn(c)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	backendDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())

	return err
}
