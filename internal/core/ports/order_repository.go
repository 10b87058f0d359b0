package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides lookups by id, by the referencing user, and by lifecycle status.
type OrderRepository interface {
	// GetByID retrieves an order by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order has the id.
	GetByID(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByUserID retrieves all orders referencing the given user,
	// in unspecified order. An unknown user yields an empty slice.
	GetByUserID(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// GetByStatus retrieves all orders currently in exactly the given status.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAll retrieves all orders in unspecified order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Save upserts an order by id: inserts when absent, overwrites when present.
	Save(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order by id. It reports whether an entry existed and
	// never fails on absence.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}
