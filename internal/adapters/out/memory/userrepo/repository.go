package userrepo

import (
	"context"
	"strings"
	"sync"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

var _ ports.UserRepository = (*Repository)(nil)

// Repository is an in-memory implementation of ports.UserRepository backed
// by a map guarded with a read-write mutex. Aggregates are stored and
// returned as snapshots, so callers never share mutable state with the
// store. Intended for tests and for running without a database.
type Repository struct {
	mu    sync.RWMutex
	users map[kernel.UUID]*user.User
}

// NewRepository creates an empty in-memory user repository.
func NewRepository() *Repository {
	return &Repository{
		users: make(map[kernel.UUID]*user.User),
	}
}

// GetByID retrieves a user by id.
// Returns errs.ObjectNotFoundError when no user has the id.
func (r *Repository) GetByID(_ context.Context, id kernel.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("userId", id)
	}
	return clone(u)
}

// GetByEmail retrieves a user by email, compared case-insensitively against
// the stored normalized address.
// Returns errs.ObjectNotFoundError when no user matches.
func (r *Repository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email() == normalized {
			return clone(u)
		}
	}
	return nil, errs.NewObjectNotFoundError("email", email)
}

// GetAll retrieves all users in unspecified order.
func (r *Repository) GetAll(_ context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		c, err := clone(u)
		if err != nil {
			return nil, err
		}
		all = append(all, c)
	}
	return all, nil
}

// Save upserts a user by id: inserts when absent, overwrites when present.
func (r *Repository) Save(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snapshot, err := clone(aggregate)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[snapshot.ID()] = snapshot
	return nil
}

// Delete removes a user by id, reporting whether an entry existed.
func (r *Repository) Delete(_ context.Context, id kernel.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.users[id]
	delete(r.users, id)
	return ok, nil
}

func clone(u *user.User) (*user.User, error) {
	var updatedAt *time.Time
	if t := u.UpdatedAt(); t != nil {
		cp := *t
		updatedAt = &cp
	}

	return user.RestoreUser(
		u.ID(),
		u.Email(),
		u.Name(),
		u.PasswordHash(),
		u.IsActive(),
		u.CreatedAt(),
		updatedAt,
	)
}
