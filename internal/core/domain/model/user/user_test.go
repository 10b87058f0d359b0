package user_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHasher is a deterministic PasswordHasher for tests.
type stubHasher struct{}

func (stubHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (stubHasher) Compare(hash, plain string) bool {
	return hash == "hashed:"+plain
}

func TestNewUser(t *testing.T) {
	validID := kernel.NewUUID()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	hasher := stubHasher{}

	t.Run("should create active user with normalized fields", func(t *testing.T) {
		u, err := user.NewUser(validID, "  Ada@Example.COM ", "  Ada Lovelace  ", "secret", hasher, now)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(validID))
		assert.Equal(t, "ada@example.com", u.Email())
		assert.Equal(t, "Ada Lovelace", u.Name())
		assert.True(t, u.IsActive())
		assert.Equal(t, now, u.CreatedAt())
		assert.Nil(t, u.UpdatedAt())
	})

	t.Run("should store only the password hash", func(t *testing.T) {
		u, err := user.NewUser(validID, "ada@example.com", "Ada", "secret", hasher, now)

		require.NoError(t, err)
		assert.Equal(t, "hashed:secret", u.PasswordHash())
		assert.NotContains(t, u.PasswordHash(), "secret\x00")
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		u, err := user.NewUser(invalidID, "ada@example.com", "Ada", "secret", hasher, now)

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should fail with blank email", func(t *testing.T) {
		u, err := user.NewUser(validID, "   ", "Ada", "secret", hasher, now)

		require.Error(t, err)
		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		u, err := user.NewUser(validID, "ada@example.com", "   ", "secret", hasher, now)

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should fail with empty password", func(t *testing.T) {
		u, err := user.NewUser(validID, "ada@example.com", "Ada", "", hasher, now)

		require.Error(t, err)
		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreUser(t *testing.T) {
	id := kernel.NewUUID()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	t.Run("should restore user without re-hashing", func(t *testing.T) {
		u, err := user.RestoreUser(id, "ada@example.com", "Ada", "hashed:secret", false, created, &updated)

		require.NoError(t, err)
		assert.Equal(t, "hashed:secret", u.PasswordHash())
		assert.False(t, u.IsActive())
		require.NotNil(t, u.UpdatedAt())
		assert.Equal(t, updated, *u.UpdatedAt())
	})

	t.Run("should reject blank email", func(t *testing.T) {
		u, err := user.RestoreUser(id, "", "Ada", "hashed:secret", true, created, nil)

		require.Error(t, err)
		assert.Nil(t, u)
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	id := kernel.NewUUID()
	now := time.Now()
	hasher := stubHasher{}
	u, err := user.NewUser(id, "ada@example.com", "Ada", "secret", hasher, now)
	require.NoError(t, err)

	t.Run("should accept the original password", func(t *testing.T) {
		assert.True(t, u.VerifyPassword("secret", hasher))
	})

	t.Run("should reject any other input", func(t *testing.T) {
		assert.False(t, u.VerifyPassword("Secret", hasher))
		assert.False(t, u.VerifyPassword("secret ", hasher))
		assert.False(t, u.VerifyPassword("", hasher))
	})
}

func TestUser_Update(t *testing.T) {
	id := kernel.NewUUID()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Minute)
	hasher := stubHasher{}

	newUser := func(t *testing.T) *user.User {
		t.Helper()
		u, err := user.NewUser(id, "ada@example.com", "Ada", "secret", hasher, created)
		require.NoError(t, err)
		return u
	}

	t.Run("should apply only supplied fields", func(t *testing.T) {
		u := newUser(t)

		name := "Ada L."
		require.NoError(t, u.Update(user.UpdateRequest{Name: &name}, later))

		assert.Equal(t, "Ada L.", u.Name())
		assert.Equal(t, "ada@example.com", u.Email())
		require.NotNil(t, u.UpdatedAt())
		assert.Equal(t, later, *u.UpdatedAt())
	})

	t.Run("should normalize a supplied email", func(t *testing.T) {
		u := newUser(t)

		email := "  NEW@Example.com "
		require.NoError(t, u.Update(user.UpdateRequest{Email: &email}, later))

		assert.Equal(t, "new@example.com", u.Email())
	})

	t.Run("should reject blank supplied email and change nothing", func(t *testing.T) {
		u := newUser(t)

		blank := "   "
		err := u.Update(user.UpdateRequest{Email: &blank}, later)

		require.Error(t, err)
		assert.Equal(t, "ada@example.com", u.Email())
		assert.Nil(t, u.UpdatedAt())
	})

	t.Run("should toggle isActive via patch", func(t *testing.T) {
		u := newUser(t)

		inactive := false
		require.NoError(t, u.Update(user.UpdateRequest{IsActive: &inactive}, later))

		assert.False(t, u.IsActive())
	})

	t.Run("empty request still stamps updatedAt", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.Update(user.UpdateRequest{}, later))

		require.NotNil(t, u.UpdatedAt())
	})
}

func TestUser_ActivateDeactivate(t *testing.T) {
	id := kernel.NewUUID()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Minute)
	hasher := stubHasher{}

	u, err := user.NewUser(id, "ada@example.com", "Ada", "secret", hasher, created)
	require.NoError(t, err)

	u.Deactivate(later)
	assert.False(t, u.IsActive())
	require.NotNil(t, u.UpdatedAt())
	assert.Equal(t, later, *u.UpdatedAt())

	evenLater := later.Add(time.Minute)
	u.Activate(evenLater)
	assert.True(t, u.IsActive())
	assert.Equal(t, evenLater, *u.UpdatedAt())
}

func TestUser_Validate(t *testing.T) {
	t.Run("should fail for nil user", func(t *testing.T) {
		var u *user.User

		assert.Equal(t, user.ErrUserIsNotConstructed, u.Validate())
	})

	t.Run("should fail for zero value user", func(t *testing.T) {
		var u user.User

		assert.Equal(t, user.ErrUserIsNotConstructed, u.Validate())
	})
}
