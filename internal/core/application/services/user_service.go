package services

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// UserService implements the user management use cases.
// It orchestrates the User aggregate and the UserRepository port and
// enforces the email uniqueness rule that the entity itself does not carry.
type UserService struct {
	users  ports.UserRepository
	hasher user.PasswordHasher
	clock  Clock
	ids    IDGenerator
}

// NewUserService creates a UserService over the given repository and
// environment primitives.
func NewUserService(
	users ports.UserRepository,
	hasher user.PasswordHasher,
	clock Clock,
	ids IDGenerator,
) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
		clock:  clock,
		ids:    ids,
	}
}

// CreateUser registers a new user.
// Fails with errs.ConflictError when the email is already registered
// (case-insensitive), regardless of the other fields.
func (s *UserService) CreateUser(ctx context.Context, email, name, password string) (*user.User, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewConflictError("email", existing.Email())
	}

	u, err := user.NewUser(s.ids.NextID(), email, name, password, s.hasher, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// GetUserByID loads a user by id.
// Returns errs.ObjectNotFoundError when absent.
func (s *UserService) GetUserByID(ctx context.Context, id kernel.UUID) (*user.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetAllUsers lists every registered user.
func (s *UserService) GetAllUsers(ctx context.Context) ([]*user.User, error) {
	return s.users.GetAll(ctx)
}

// UpdateUser applies the non-nil fields of the request to the user and
// persists the result. Returns errs.ObjectNotFoundError when the user does
// not exist; no mutation happens on any failing path.
func (s *UserService) UpdateUser(ctx context.Context, id kernel.UUID, req user.UpdateRequest) (*user.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = u.Update(req, s.clock.Now()); err != nil {
		return nil, err
	}

	if err = s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// ActivateUser marks the user account active.
func (s *UserService) ActivateUser(ctx context.Context, id kernel.UUID) (*user.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Activate(s.clock.Now())

	if err = s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// DeactivateUser marks the user account inactive.
func (s *UserService) DeactivateUser(ctx context.Context, id kernel.UUID) (*user.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Deactivate(s.clock.Now())

	if err = s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// DeleteUser removes the user from storage, reporting whether it existed.
func (s *UserService) DeleteUser(ctx context.Context, id kernel.UUID) (bool, error) {
	return s.users.Delete(ctx, id)
}
