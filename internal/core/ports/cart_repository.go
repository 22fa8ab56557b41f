package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// CartRepository defines the persistence contract for consumer carts.
//
// Mutations are expressed as store-side operations rather than a whole-cart
// save so that concurrent adds from two devices interleave without losing
// updates: the store applies the same clamped arithmetic as the Cart
// aggregate in a single atomic statement per item.
type CartRepository interface {
	// Get retrieves the consumer's cart. A consumer with no stored entries
	// gets an empty, constructed cart.
	Get(ctx context.Context, consumerID kernel.UUID) (*user.Cart, error)

	// AddQuantity atomically adds quantity units of the item to the cart,
	// inserting the entry if absent and clamping the result at the cart's
	// per-item ceiling. Returns the entry's resulting quantity.
	AddQuantity(ctx context.Context, consumerID, itemID kernel.UUID, quantity int) (int, error)

	// RemoveItem deletes the entry for the item. Removing an absent entry
	// is not an error.
	RemoveItem(ctx context.Context, consumerID, itemID kernel.UUID) error

	// Clear deletes every entry of the consumer's cart.
	Clear(ctx context.Context, consumerID kernel.UUID) error
}
