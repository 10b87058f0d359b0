package services

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// ItemInput is the raw item descriptor accepted by order use cases before
// it is turned into a validated order.Item.
type ItemInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// OrderService implements the order management use cases: creation with a
// user-existence check, reads by id/user/status, field updates, deletion and
// the lifecycle transitions of the order state machine.
type OrderService struct {
	orders ports.OrderRepository
	users  ports.UserRepository
	clock  Clock
	ids    IDGenerator
}

// NewOrderService creates an OrderService over the given repositories and
// environment primitives.
func NewOrderService(
	orders ports.OrderRepository,
	users ports.UserRepository,
	clock Clock,
	ids IDGenerator,
) *OrderService {
	return &OrderService{
		orders: orders,
		users:  users,
		clock:  clock,
		ids:    ids,
	}
}

// CreateOrder places a new order for the given user.
// Fails with errs.ObjectNotFoundError when the user does not exist and with
// a validation error when any item descriptor is invalid. The new order
// starts pending with its total derived from the items.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	userID kernel.UUID,
	items []ItemInput,
	shippingAddress string,
	notes string,
) (*order.Order, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	orderItems := make([]order.Item, 0, len(items))
	for _, in := range items {
		item, err := order.NewItem(in.ProductID, in.ProductName, in.Quantity, in.UnitPrice)
		if err != nil {
			return nil, err
		}
		orderItems = append(orderItems, item)
	}

	o, err := order.NewOrder(s.ids.NextID(), userID, orderItems, shippingAddress, notes, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// GetOrderByID loads an order by id.
// Returns errs.ObjectNotFoundError when absent.
func (s *OrderService) GetOrderByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// GetUserOrders lists all orders placed by the given user.
func (s *OrderService) GetUserOrders(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	return s.orders.GetByUserID(ctx, userID)
}

// GetAllOrders lists every order.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]*order.Order, error) {
	return s.orders.GetAll(ctx)
}

// GetOrdersByStatus lists all orders in exactly the given status, parsed
// from its wire name. Fails with a validation error for names outside the
// status set.
func (s *OrderService) GetOrdersByStatus(ctx context.Context, status string) ([]*order.Order, error) {
	parsed, err := order.StatusFromString(status)
	if err != nil {
		return nil, err
	}
	return s.orders.GetByStatus(ctx, parsed)
}

// ConfirmOrder moves a pending order to confirmed.
// Not-found and invalid-transition failures propagate unmodified.
func (s *OrderService) ConfirmOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.transition(ctx, id, (*order.Order).Confirm)
}

// ProcessOrder moves a confirmed order to processing.
func (s *OrderService) ProcessOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.transition(ctx, id, (*order.Order).Process)
}

// ShipOrder moves a processing order to shipped.
func (s *OrderService) ShipOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.transition(ctx, id, (*order.Order).Ship)
}

// DeliverOrder moves a shipped order to delivered.
func (s *OrderService) DeliverOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.transition(ctx, id, (*order.Order).Deliver)
}

// CancelOrder cancels an order that has not shipped yet.
func (s *OrderService) CancelOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.transition(ctx, id, (*order.Order).Cancel)
}

// AddOrderItem appends an item to a pending order and persists the
// recomputed total.
func (s *OrderService) AddOrderItem(ctx context.Context, id kernel.UUID, in ItemInput) (*order.Order, error) {
	item, err := order.NewItem(in.ProductID, in.ProductName, in.Quantity, in.UnitPrice)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, id, func(o *order.Order, now time.Time) error {
		return o.AddItem(item, now)
	})
}

// UpdateOrder applies the non-nil fields of the request to the order and
// persists the result.
func (s *OrderService) UpdateOrder(ctx context.Context, id kernel.UUID, req order.UpdateRequest) (*order.Order, error) {
	return s.transition(ctx, id, func(o *order.Order, now time.Time) error {
		return o.Update(req, now)
	})
}

// DeleteOrder removes the order from storage, reporting whether it existed.
func (s *OrderService) DeleteOrder(ctx context.Context, id kernel.UUID) (bool, error) {
	return s.orders.Delete(ctx, id)
}

// transition implements the shared load-mutate-save shape of the order use
// cases. The mutation runs against the loaded aggregate; on failure nothing
// is saved and the error propagates to the caller untouched.
func (s *OrderService) transition(
	ctx context.Context,
	id kernel.UUID,
	mutate func(*order.Order, time.Time) error,
) (*order.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = mutate(o, s.clock.Now()); err != nil {
		return nil, err
	}

	if err = s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}
