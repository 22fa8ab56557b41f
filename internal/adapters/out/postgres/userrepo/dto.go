// Package userrepo provides the data transfer objects and mapping functions
// for user persistence. Addresses live in a child table keyed by position so
// their insertion order survives round trips.
package userrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// Username and email carry unique indexes; the store is the source of truth
// for login uniqueness.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex"`
	RealName     string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
	LocationName string
	Addresses    []AddressDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO is one saved delivery address of a user.
type AddressDTO struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	Address  string
}

// TableName specifies the database table name for address entities.
func (AddressDTO) TableName() string {
	return "user_addresses"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	addresses := make([]AddressDTO, 0, len(aggregate.Addresses()))
	for i, address := range aggregate.Addresses() {
		addresses = append(addresses, AddressDTO{
			UserID:   aggregate.ID().Bytes(),
			Position: i,
			Address:  address,
		})
	}

	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		RealName:     aggregate.RealName(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		LocationName: aggregate.LocationName(),
		Addresses:    addresses,
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, 0, len(dto.Addresses))
	for _, address := range dto.Addresses {
		addresses = append(addresses, address.Address)
	}

	return user.RestoreUser(
		id,
		dto.Username,
		dto.RealName,
		dto.Email,
		dto.PasswordHash,
		role,
		dto.LocationName,
		addresses,
	)
}
