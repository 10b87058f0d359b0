// Package ports defines repository interfaces for the shop domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// The reference implementation is an in-memory store; persistent adapters
// substitute without touching the application layer.
type UserRepository interface {
	// GetByID retrieves a user by its unique identifier.
	// Returns errs.ObjectNotFoundError when no user has the id.
	GetByID(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by email address. The match is
	// case-insensitive; implementations compare against the normalized
	// lower-case form. Returns errs.ObjectNotFoundError when absent.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetAll retrieves all users in unspecified order.
	GetAll(ctx context.Context) ([]*user.User, error)

	// Save upserts a user by id: inserts when absent, overwrites when present.
	Save(ctx context.Context, aggregate *user.User) error

	// Delete removes a user by id. It reports whether an entry existed and
	// never fails on absence.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}
