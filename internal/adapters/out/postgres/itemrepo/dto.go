// Package itemrepo provides the data transfer objects and mapping functions
// for catalog item persistence. Price is flattened to a unit string plus an
// amount column.
package itemrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting catalog items.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Category    string
	Description string
	PriceUnit   string
	PriceAmount float64
	Available   bool
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an item domain aggregate to its database representation.
func fromDomain(aggregate *shop.Item) ItemDTO {
	return ItemDTO{
		ID:          aggregate.ID().Bytes(),
		ShopID:      aggregate.ShopID().Bytes(),
		Name:        aggregate.Name(),
		Category:    aggregate.Category(),
		Description: aggregate.Description(),
		PriceUnit:   aggregate.Price().Unit().String(),
		PriceAmount: aggregate.Price().Amount(),
		Available:   aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to an item domain aggregate.
func toDomain(dto ItemDTO) (*shop.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	unit, err := kernel.PriceUnitFromString(dto.PriceUnit)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(unit, dto.PriceAmount)
	if err != nil {
		return nil, err
	}

	return shop.RestoreItem(id, shopID, dto.Name, dto.Category, dto.Description, price, dto.Available)
}
