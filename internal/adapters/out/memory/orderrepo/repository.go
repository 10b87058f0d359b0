package orderrepo

import (
	"context"
	"sync"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

var _ ports.OrderRepository = (*Repository)(nil)

// Repository is an in-memory implementation of ports.OrderRepository backed
// by a map guarded with a read-write mutex. Aggregates are stored and
// returned as snapshots, so callers never share mutable state with the
// store. Intended for tests and for running without a database.
type Repository struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
}

// NewRepository creates an empty in-memory order repository.
func NewRepository() *Repository {
	return &Repository{
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// GetByID retrieves an order by id.
// Returns errs.ObjectNotFoundError when no order has the id.
func (r *Repository) GetByID(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return clone(o)
}

// GetByUserID retrieves all orders referencing the given user.
// An unknown user yields an empty slice.
func (r *Repository) GetByUserID(_ context.Context, userID kernel.UUID) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool {
		return o.UserID().IsEqual(userID)
	})
}

// GetByStatus retrieves all orders currently in exactly the given status.
func (r *Repository) GetByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	return r.filter(func(o *order.Order) bool {
		return o.Status() == status
	})
}

// GetAll retrieves all orders in unspecified order.
func (r *Repository) GetAll(_ context.Context) ([]*order.Order, error) {
	return r.filter(func(*order.Order) bool {
		return true
	})
}

// Save upserts an order by id: inserts when absent, overwrites when present.
func (r *Repository) Save(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snapshot, err := clone(aggregate)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[snapshot.ID()] = snapshot
	return nil
}

// Delete removes an order by id, reporting whether an entry existed.
func (r *Repository) Delete(_ context.Context, id kernel.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.orders[id]
	delete(r.orders, id)
	return ok, nil
}

func (r *Repository) filter(keep func(*order.Order) bool) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*order.Order, 0)
	for _, o := range r.orders {
		if !keep(o) {
			continue
		}
		c, err := clone(o)
		if err != nil {
			return nil, err
		}
		matched = append(matched, c)
	}
	return matched, nil
}

func clone(o *order.Order) (*order.Order, error) {
	var updatedAt *time.Time
	if t := o.UpdatedAt(); t != nil {
		cp := *t
		updatedAt = &cp
	}

	return order.RestoreOrder(
		o.ID(),
		o.UserID(),
		o.Items(),
		o.Status(),
		o.ShippingAddress(),
		o.Notes(),
		o.CreatedAt(),
		updatedAt,
	)
}
