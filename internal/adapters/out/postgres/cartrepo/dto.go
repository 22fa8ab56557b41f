// Package cartrepo provides cart persistence. A cart has no table of its own:
// it is the set of cart_items rows keyed by consumer, and every mutation is a
// single atomic statement so concurrent adds from two devices never lose
// updates.
package cartrepo

import (
	"github.com/google/uuid"
)

// CartItemDTO represents one cart entry. Position is a serial that records
// insertion order for display; the (consumer, item) pair is the identity.
type CartItemDTO struct {
	ConsumerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int
	Position   int64 `gorm:"autoIncrement;uniqueIndex"`
}

// TableName specifies the database table name for cart entries.
func (CartItemDTO) TableName() string {
	return "cart_items"
}
