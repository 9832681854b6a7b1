package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"SonicSavor/internal/dialogue"
)

var _ dialogue.Backend = (*Client)(nil)

type placeOrderRequest struct {
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	Item         string `json:"item"`
	Quantity     int    `json:"quantity"`
}

type placeOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

type answerResponse struct {
	Response string `json:"response"`
}

type reservationResponse struct {
	Message       string `json:"message"`
	ReservationID string `json:"reservation_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// PlaceOrder submits every item as one order line: the items joined by ", "
// with the item count as quantity.
func (c *Client) PlaceOrder(ctx context.Context, customerName, phoneNumber string, items []string) (string, error) {
	body, err := jsonBody(placeOrderRequest{
		CustomerName: customerName,
		PhoneNumber:  phoneNumber,
		Item:         strings.Join(items, ", "),
		Quantity:     len(items),
	})
	if err != nil {
		return "", err
	}

	var res placeOrderResponse
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/order",
		body:        body,
		contentType: "application/json",
	}, &res); err != nil {
		return "", err
	}

	return strconv.FormatInt(res.OrderID, 10), nil
}

func (c *Client) MenuInquiry(ctx context.Context, question string) (string, error) {
	body, err := jsonBody(map[string]string{"question": question})
	if err != nil {
		return "", err
	}

	var res answerResponse
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/menu-inquiry",
		body:        body,
		contentType: "application/json",
	}, &res); err != nil {
		return "", err
	}
	return res.Response, nil
}

// CreateReservation sends its fields as query parameters.
func (c *Client) CreateReservation(ctx context.Context, customerName, timeSlot string, partySize int) (string, error) {
	if partySize < 1 {
		partySize = 1
	}

	query := url.Values{}
	query.Set("customer_name", customerName)
	query.Set("time_slot", timeSlot)
	query.Set("people", strconv.Itoa(partySize))

	var res reservationResponse
	if err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/reservation",
		query:  query,
	}, &res); err != nil {
		return "", err
	}
	return res.ReservationID, nil
}

func (c *Client) ResolveIssue(ctx context.Context, text string) (string, error) {
	body, err := jsonBody(map[string]string{"text": text})
	if err != nil {
		return "", err
	}

	var res answerResponse
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/resolve-issue",
		body:        body,
		contentType: "application/json",
	}, &res); err != nil {
		return "", err
	}
	return res.Response, nil
}

// CancelOrder asks the server to cancel orderNumber on behalf of
// customerName. Ownership and the cancel window are checked server side.
func (c *Client) CancelOrder(ctx context.Context, orderNumber, customerName string) (string, error) {
	body, err := jsonBody(map[string]string{"customer_name": customerName})
	if err != nil {
		return "", err
	}

	var res messageResponse
	if err := c.do(ctx, request{
		method:      http.MethodPatch,
		path:        fmt.Sprintf("/customer/orders/%s/cancel", url.PathEscape(orderNumber)),
		body:        body,
		contentType: "application/json",
	}, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}
