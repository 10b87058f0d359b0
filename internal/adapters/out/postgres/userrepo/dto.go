// Package userrepo provides data transfer objects and mapping functions for
// user persistence. It implements the repository pattern for the user domain
// aggregate, handling the conversion between domain entities and database
// representations.
package userrepo

import (
	"time"

	"github.com/google/uuid"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// The email column carries a unique index backing the application-level
// uniqueness rule. Timestamps come from the aggregate, not from GORM.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	Name         string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time  `gorm:"autoCreateTime:false"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate using
// RestoreUser, so the stored password hash is not re-hashed.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Email,
		dto.Name,
		dto.PasswordHash,
		dto.IsActive,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
