package orderHandler

import (
	"time"

	"SonicSavor/internal/api/order"
	contextPkg "SonicSavor/pkg/context"
	"SonicSavor/pkg/handlerUtil"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *OrderHandler) HandleListOrders(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	orders, err := h.orderService.Admin().ListOrders(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_orders")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, order.ListOrdersResponse{Orders: orders})
	}
}

func (h *OrderHandler) HandleUpdateOrderStatus(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	orderID, err := ctx.ParamsInt("id")
	if err != nil || orderID <= 0 {
		return errHandler.Handle(ctx, requestID, order.ErrInvalidOrderID, ctx.Path(), "parse_order_id")
	}

	var req order.UpdateOrderStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.orderService.Admin().UpdateStatus(c, int64(orderID), req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_order_status")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
