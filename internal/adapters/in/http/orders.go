package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"shop/internal/core/application/services"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// ListOrders handles GET /api/v1/orders - lists orders with optional
// status and user_id filters. The user filter takes precedence when both
// are supplied.
func (s *Server) ListOrders(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var (
		orders []*order.Order
		err    error
	)
	switch {
	case ctx.QueryParam("user_id") != "":
		var userID kernel.UUID
		userID, err = kernel.UUIDFromString(ctx.QueryParam("user_id"))
		if err != nil {
			return writeBadRequest(ctx, "invalid user_id: must be a UUID")
		}
		orders, err = s.orders.GetUserOrders(reqCtx, userID)
	case ctx.QueryParam("status") != "":
		orders, err = s.orders.GetOrdersByStatus(reqCtx, ctx.QueryParam("status"))
	default:
		orders, err = s.orders.GetAllOrders(reqCtx)
	}
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderListResponse{
		Orders: toOrderResponses(orders),
		Total:  len(orders),
	})
}

// GetOrder handles GET /api/v1/orders/{id} - retrieves an order by id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, ok, errResp := parseID(ctx)
	if !ok {
		return errResp
	}

	o, err := s.orders.GetOrderByID(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// CreateOrder handles POST /api/v1/orders - places a new order.
// Responds 404 when the referenced user does not exist and 400 when any
// item is invalid.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return writeBadRequest(ctx, "invalid user_id: must be a UUID")
	}

	items := make([]services.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.ItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	o, err := s.orders.CreateOrder(ctx.Request().Context(), userID, items, req.ShippingAddress, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(o))
}

// UpdateOrder handles PUT /api/v1/orders/{id} - patches shipping address
// and notes.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, ok, errResp := parseID(ctx)
	if !ok {
		return errResp
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	o, err := s.orders.UpdateOrder(ctx.Request().Context(), id, order.UpdateRequest{
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// AddOrderItem handles POST /api/v1/orders/{id}/items - appends an item to
// a pending order. Responds 400 once the order left the pending status.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	id, ok, errResp := parseID(ctx)
	if !ok {
		return errResp
	}

	var req OrderItemRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	o, err := s.orders.AddOrderItem(ctx.Request().Context(), id, services.ItemInput{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// ConfirmOrder handles POST /api/v1/orders/{id}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.transition(ctx, s.orders.ConfirmOrder)
}

// ProcessOrder handles POST /api/v1/orders/{id}/process.
func (s *Server) ProcessOrder(ctx echo.Context) error {
	return s.transition(ctx, s.orders.ProcessOrder)
}

// ShipOrder handles POST /api/v1/orders/{id}/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	return s.transition(ctx, s.orders.ShipOrder)
}

// DeliverOrder handles POST /api/v1/orders/{id}/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transition(ctx, s.orders.DeliverOrder)
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transition(ctx, s.orders.CancelOrder)
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
// Responds 204 when deleted, 404 when the order does not exist.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, ok, errResp := parseID(ctx)
	if !ok {
		return errResp
	}

	deleted, err := s.orders.DeleteOrder(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}
	if !deleted {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "order not found",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// transition runs one of the order lifecycle use cases addressed by the
// :id path parameter. Unknown orders map to 404 and transitions forbidden
// by the current status to 400.
func (s *Server) transition(
	ctx echo.Context,
	useCase func(context.Context, kernel.UUID) (*order.Order, error),
) error {
	id, ok, errResp := parseID(ctx)
	if !ok {
		return errResp
	}

	o, err := useCase(ctx.Request().Context(), id)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}
