package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
)

// ShopRepository defines the persistence contract for shop aggregates.
type ShopRepository interface {
	// Add persists a new shop aggregate to storage.
	Add(ctx context.Context, aggregate *shop.Shop) error

	// Update persists changes to an existing shop aggregate.
	Update(ctx context.Context, aggregate *shop.Shop) error

	// Get retrieves a shop aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error)
}

// ItemRepository defines the persistence contract for catalog items.
type ItemRepository interface {
	// Add persists a new item aggregate to storage.
	Add(ctx context.Context, aggregate *shop.Item) error

	// Update persists changes to an existing item aggregate.
	Update(ctx context.Context, aggregate *shop.Item) error

	// Delete removes an item from the catalog.
	// Cart entries referencing the item are removed with it.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an item aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shop.Item, error)

	// GetAllByIDs retrieves the items for the given identifiers, keyed by ID.
	// Missing identifiers are simply absent from the result.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*shop.Item, error)
}
