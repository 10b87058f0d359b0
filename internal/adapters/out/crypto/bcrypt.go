// Package crypto provides the password hashing adapter for the user domain.
package crypto

import (
	"golang.org/x/crypto/bcrypt"

	"shop/internal/core/domain/model/user"
)

var _ user.PasswordHasher = BcryptHasher{}

// BcryptHasher implements user.PasswordHasher using bcrypt.
// The zero value uses the bcrypt default cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given bcrypt cost.
// Costs outside the valid bcrypt range fall back to the default.
func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{cost: cost}
}

// Hash derives a bcrypt hash from the plain text password.
func (h BcryptHasher) Hash(plain string) (string, error) {
	cost := h.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether plain hashes to the stored bcrypt hash.
func (h BcryptHasher) Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
