package user

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	// MinCartQuantity is the smallest quantity a cart entry may hold.
	MinCartQuantity = 1

	// MaxCartQuantity is the ceiling every add and merge clamps to.
	MaxCartQuantity = 999
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

// CartItem is one entry of a consumer's cart: a reference to a catalog item
// and a quantity in [MinCartQuantity, MaxCartQuantity].
type CartItem struct {
	itemID   kernel.UUID
	quantity int
}

// NewCartItem creates a cart entry with a validated item reference and quantity.
func NewCartItem(itemID kernel.UUID, quantity int) (CartItem, error) {
	if err := itemID.Validate(); err != nil {
		return CartItem{}, err
	}
	if quantity < MinCartQuantity || quantity > MaxCartQuantity {
		return CartItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, MinCartQuantity, MaxCartQuantity)
	}
	return CartItem{itemID: itemID, quantity: quantity}, nil
}

// ItemID returns the referenced catalog item's identifier.
func (ci CartItem) ItemID() kernel.UUID {
	return ci.itemID
}

// Quantity returns how many units of the item the entry holds.
func (ci CartItem) Quantity() int {
	return ci.quantity
}

// MergeEntry is one element of a guest-cart merge request: an item reference
// with a raw, not yet validated quantity. Quantities may repeat per item and
// may be zero or negative; AggregateMergeEntries normalizes them.
type MergeEntry struct {
	ItemID   kernel.UUID
	Quantity int
}

// AggregateMergeEntries normalizes a merge request before it is applied to a
// cart: quantities of repeated items are summed, negative contributions count
// as zero, and entries whose resolved quantity is not positive are dropped.
// First-seen order of items is preserved.
func AggregateMergeEntries(entries []MergeEntry) []MergeEntry {
	totals := make(map[kernel.UUID]int, len(entries))
	ordered := make([]kernel.UUID, 0, len(entries))

	for _, e := range entries {
		if e.ItemID.Validate() != nil {
			continue
		}
		if _, seen := totals[e.ItemID]; !seen {
			ordered = append(ordered, e.ItemID)
		}
		totals[e.ItemID] += max(0, e.Quantity)
	}

	aggregated := make([]MergeEntry, 0, len(ordered))
	for _, id := range ordered {
		if totals[id] <= 0 {
			continue
		}
		aggregated = append(aggregated, MergeEntry{ItemID: id, Quantity: totals[id]})
	}

	return aggregated
}

// Cart is the mutable pre-order selection of a single consumer. It holds at
// most one entry per catalog item and keeps every quantity inside
// [MinCartQuantity, MaxCartQuantity].
//
// Cart follows these invariants:
//   - At most one entry per item reference
//   - Every quantity is within [1, 999]; adds clamp at the ceiling
//   - Can only be created through NewCart or RestoreCart
type Cart struct {
	consumerID kernel.UUID
	items      []CartItem

	isConstructed bool
}

// NewCart creates an empty cart for the given consumer.
func NewCart(consumerID kernel.UUID) (*Cart, error) {
	if err := consumerID.Validate(); err != nil {
		return nil, err
	}
	return &Cart{
		consumerID:    consumerID,
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persistence.
// Entries must already satisfy the cart invariants.
func RestoreCart(consumerID kernel.UUID, items []CartItem) (*Cart, error) {
	cart, err := NewCart(consumerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[kernel.UUID]bool, len(items))
	for _, it := range items {
		if seen[it.itemID] {
			return nil, errs.NewValueIsInvalidErrorWithCause("cart items",
				fmt.Errorf("duplicate entry for item %s", it.itemID))
		}
		seen[it.itemID] = true
	}
	cart.items = append(cart.items, items...)

	return cart, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ConsumerID returns the identifier of the consumer owning the cart.
func (c *Cart) ConsumerID() kernel.UUID {
	return c.consumerID
}

// Items returns the cart entries in insertion order.
func (c *Cart) Items() []CartItem {
	return c.items
}

// IsEmpty reports whether the cart holds no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// TotalQuantity returns the sum of all entry quantities, the number shown on
// the cart badge.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, it := range c.items {
		total += it.quantity
	}
	return total
}

// Add puts quantity units of an item into the cart. If the item is already
// present the quantities are summed; the result is clamped at MaxCartQuantity
// and never raised past it. Returns the new total quantity across all entries.
//
// The quantity must be at least MinCartQuantity; rejecting zero and negative
// adds here keeps Add distinct from Remove.
func (c *Cart) Add(itemID kernel.UUID, quantity int) (int, error) {
	if err := itemID.Validate(); err != nil {
		return 0, err
	}
	if quantity < MinCartQuantity {
		return 0, errs.NewValueIsOutOfRangeError("quantity", quantity, MinCartQuantity, MaxCartQuantity)
	}

	for i := range c.items {
		if c.items[i].itemID.IsEqual(itemID) {
			c.items[i].quantity = min(MaxCartQuantity, c.items[i].quantity+quantity)
			return c.TotalQuantity(), nil
		}
	}

	c.items = append(c.items, CartItem{
		itemID:   itemID,
		quantity: min(MaxCartQuantity, quantity),
	})
	return c.TotalQuantity(), nil
}

// Merge folds a guest cart into this cart. Entries are aggregated first
// (repeats summed, negatives clamped to zero, empties dropped) and each
// surviving entry is applied as an Add, so per-item quantities clamp at
// MaxCartQuantity. A merge whose entries all resolve to zero is a no-op.
// Returns the new total quantity across all entries.
func (c *Cart) Merge(entries []MergeEntry) (int, error) {
	if len(entries) == 0 {
		return 0, errs.NewValueIsRequiredError("items")
	}

	for _, e := range AggregateMergeEntries(entries) {
		if _, err := c.Add(e.ItemID, e.Quantity); err != nil {
			return 0, err
		}
	}
	return c.TotalQuantity(), nil
}

// Remove deletes the entry for the given item if present.
// Removing an absent item is not an error.
func (c *Cart) Remove(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	for i := range c.items {
		if c.items[i].itemID.IsEqual(itemID) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// Clear empties the cart. Used after a successful order placement and on
// explicit consumer request.
func (c *Cart) Clear() {
	c.items = nil
}
