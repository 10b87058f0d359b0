package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shop/internal/adapters/out/crypto"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "secret", hash)

	require.True(t, hasher.Compare(hash, "secret"))
	require.False(t, hasher.Compare(hash, "wrong"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret")
	require.NoError(t, err)
	second, err := hasher.Hash("secret")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, hasher.Compare(first, "secret"))
	require.True(t, hasher.Compare(second, "secret"))
}

func TestBcryptHasher_ZeroValueUsesDefaultCost(t *testing.T) {
	var hasher crypto.BcryptHasher

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := crypto.NewBcryptHasher(99)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.DefaultCost, cost)
}
