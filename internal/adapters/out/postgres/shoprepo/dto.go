// Package shoprepo provides the data transfer objects and mapping functions
// for shop persistence.
package shoprepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"

	"github.com/google/uuid"
)

// ShopDTO represents the database structure for persisting shop aggregates.
// LocationName is indexed for the browse-by-location listing.
type ShopDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Category     string
	LocationName string `gorm:"index"`
	ImageURL     string
}

// TableName specifies the database table name for shop entities.
func (ShopDTO) TableName() string {
	return "shops"
}

// fromDomain converts a shop domain aggregate to its database representation.
func fromDomain(aggregate *shop.Shop) ShopDTO {
	return ShopDTO{
		ID:           aggregate.ID().Bytes(),
		OwnerID:      aggregate.OwnerID().Bytes(),
		Name:         aggregate.Name(),
		Category:     aggregate.Category(),
		LocationName: aggregate.LocationName(),
		ImageURL:     aggregate.ImageURL(),
	}
}

// toDomain converts a database DTO to a shop domain aggregate.
func toDomain(dto ShopDTO) (*shop.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return shop.RestoreShop(id, ownerID, dto.Name, dto.Category, dto.LocationName, dto.ImageURL)
}
