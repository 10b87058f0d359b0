package user

import (
	"errors"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// PasswordHasher derives and checks one-way password hashes.
// The concrete implementation is injected from the outside so the domain
// stays free of cryptography details.
type PasswordHasher interface {
	// Hash derives a one-way hash from the plain text password.
	Hash(plain string) (string, error)

	// Compare reports whether plain hashes to the stored hash.
	Compare(hash, plain string) bool
}

// User represents a registered user of the system. It is an aggregate root
// holding the user's identity, contact data and credential hash.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Email is stored normalized: lower-cased and trimmed
//   - Name is stored trimmed
//   - Only the password hash is held, never the plain password
//   - id and createdAt are immutable after construction
//
// Email uniqueness is not a User invariant; it is enforced by the
// application service before creation.
type User struct {
	id           kernel.UUID
	email        string
	name         string
	passwordHash string
	isActive     bool

	createdAt time.Time
	updatedAt *time.Time

	isConstructed bool
}

// UpdateRequest enumerates the user fields that may be patched after
// creation. Nil fields are left untouched; id and createdAt are not
// representable here and therefore immutable.
type UpdateRequest struct {
	Email    *string
	Name     *string
	IsActive *bool
}

// NewUser creates a new User with validation. The email is normalized to
// lower case and trimmed, the name trimmed, and the password hashed through
// the supplied hasher. The user starts active with createdAt set to now.
func NewUser(
	id kernel.UUID,
	email string,
	name string,
	password string,
	hasher PasswordHasher,
	now time.Time,
) (*User, error) {
	u := &User{
		isActive:      true,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
	); err != nil {
		return nil, err
	}

	if password == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u.passwordHash = hash

	return u, nil
}

// RestoreUser reconstructs a User from persistence without re-hashing.
func RestoreUser(
	id kernel.UUID,
	email string,
	name string,
	passwordHash string,
	isActive bool,
	createdAt time.Time,
	updatedAt *time.Time,
) (*User, error) {
	u := &User{
		passwordHash:  passwordHash,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed through a
// factory function.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the normalized email address.
func (u *User) Email() string {
	return u.email
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// PasswordHash returns the stored one-way credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsActive reports whether the user account is active.
func (u *User) IsActive() bool {
	return u.isActive
}

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the last mutation timestamp, nil if never mutated.
func (u *User) UpdatedAt() *time.Time {
	return u.updatedAt
}

// VerifyPassword reports whether candidate is the password the stored hash
// was derived from.
func (u *User) VerifyPassword(candidate string, hasher PasswordHasher) bool {
	return hasher.Compare(u.passwordHash, candidate)
}

// Update applies the non-nil fields of the request and stamps updatedAt.
// Supplied values go through the same normalization and validation as at
// construction; on failure nothing is changed.
func (u *User) Update(req UpdateRequest, now time.Time) error {
	if req.Email != nil {
		if err := u.setEmail(*req.Email); err != nil {
			return err
		}
	}
	if req.Name != nil {
		if err := u.setName(*req.Name); err != nil {
			return err
		}
	}
	if req.IsActive != nil {
		u.isActive = *req.IsActive
	}

	u.touch(now)
	return nil
}

// Activate marks the account active and stamps updatedAt.
func (u *User) Activate(now time.Time) {
	u.isActive = true
	u.touch(now)
}

// Deactivate marks the account inactive and stamps updatedAt.
func (u *User) Deactivate(now time.Time) {
	u.isActive = false
	u.touch(now)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = normalized
	return nil
}

func (u *User) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = trimmed
	return nil
}

func (u *User) touch(now time.Time) {
	t := now
	u.updatedAt = &t
}
