package orderHandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"SonicSavor/internal/api/order"
	orderService "SonicSavor/internal/api/order/service"
	"SonicSavor/internal/entity"
	"SonicSavor/internal/middleware"
	jwtPkg "SonicSavor/pkg/jwt"
	"SonicSavor/pkg/log"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	placed    []order.CreateOrderRequest
	cancelErr error
	cancelled []int64
	updates   []string
}

func (f *fakeService) Customer() orderService.CustomerDomain { return f }
func (f *fakeService) Admin() orderService.AdminDomain       { return adminFake{f} }

func (f *fakeService) PlaceOrder(_ context.Context, req order.CreateOrderRequest) (order.CreateOrderResponse, error) {
	f.placed = append(f.placed, req)
	return order.CreateOrderResponse{Message: "Order placed successfully", OrderID: 17}, nil
}

func (f *fakeService) CancelOrder(_ context.Context, id int64, _ order.CancelOrderRequest) (order.MessageResponse, error) {
	f.cancelled = append(f.cancelled, id)
	if f.cancelErr != nil {
		return order.MessageResponse{}, f.cancelErr
	}
	return order.MessageResponse{Message: "Order #17 has been successfully cancelled."}, nil
}

type adminFake struct{ f *fakeService }

func (a adminFake) ListOrders(context.Context) ([]entity.Order, error) {
	return []entity.Order{{ID: 17, CustomerName: "Sam", Status: entity.OrderStatusPending}}, nil
}

func (a adminFake) UpdateStatus(_ context.Context, id int64, req order.UpdateOrderStatusRequest) (order.UpdateOrderStatusResponse, error) {
	a.f.updates = append(a.f.updates, req.Status)
	return order.UpdateOrderStatusResponse{Message: "ok", Order: entity.Order{ID: id, Status: entity.OrderStatus(req.Status)}}, nil
}

func newTestApp(svc orderService.OrderService) *fiber.App {
	logger := log.NewDiscardLogger()
	mw := middleware.New(logger, nil)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	New(logger, svc, validator.New(), mw).Start(app.Group("/api/v1"))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body, token string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	out := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, jsoniter.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestPlaceOrder(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc)

	status, body := do(t, app, http.MethodPost, "/api/v1/order",
		`{"customer_name":"Sam","phone_number":"0812","item":"burger, fries","quantity":2}`, "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Order placed successfully", body["message"])
	assert.EqualValues(t, 17, body["order_id"])
	require.Len(t, svc.placed, 1)
	assert.Equal(t, 2, svc.placed[0].Quantity)
}

func TestPlaceOrder_Validation(t *testing.T) {
	app := newTestApp(&fakeService{})

	status, body := do(t, app, http.MethodPost, "/api/v1/order", `{"customer_name":"Sam"}`, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestCancelOrder(t *testing.T) {
	svc := &fakeService{}
	app := newTestApp(svc)

	status, body := do(t, app, http.MethodPatch, "/api/v1/customer/orders/17/cancel", `{"customer_name":"Sam"}`, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Order #17 has been successfully cancelled.", body["message"])
	assert.Equal(t, []int64{17}, svc.cancelled)
}

func TestCancelOrder_ErrorStatus(t *testing.T) {
	app := newTestApp(&fakeService{cancelErr: order.ErrCustomerMismatch})

	status, body := do(t, app, http.MethodPatch, "/api/v1/customer/orders/17/cancel", `{"customer_name":"Bob"}`, "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Customer name does not match the order", body["error"])
}

func TestCancelOrder_BadID(t *testing.T) {
	app := newTestApp(&fakeService{})

	status, _ := do(t, app, http.MethodPatch, "/api/v1/customer/orders/abc/cancel", `{"customer_name":"Sam"}`, "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecret, "test-secret")
	app := newTestApp(&fakeService{})

	status, _ := do(t, app, http.MethodGet, "/api/v1/admin/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	token, _, err := jwtPkg.Sign(map[string]interface{}{"id": "u1", "username": "admin"}, time.Hour)
	require.NoError(t, err)

	status, body := do(t, app, http.MethodGet, "/api/v1/admin/orders", "", token)
	assert.Equal(t, http.StatusOK, status)
	orders, ok := body["orders"].([]interface{})
	require.True(t, ok)
	assert.Len(t, orders, 1)
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecret, "test-secret")
	svc := &fakeService{}
	app := newTestApp(svc)

	token, _, err := jwtPkg.Sign(map[string]interface{}{"id": "u1", "username": "admin"}, time.Hour)
	require.NoError(t, err)

	status, _ := do(t, app, http.MethodPatch, "/api/v1/admin/orders/17", `{"status":"ready"}`, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"ready"}, svc.updates)
}
