package shop

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is one product listed in a shop. Its price carries exactly one pricing
// unit; cart display and order billing resolve through the same Price value.
//
// Item follows these invariants:
//   - Must have a valid unique identifier and a valid shop identifier
//   - Name and category are required
//   - Price must be a constructed kernel.Price
//   - Can only be created through NewItem or RestoreItem
type Item struct {
	id          kernel.UUID
	shopID      kernel.UUID
	name        string
	category    string
	description string
	price       kernel.Price
	available   bool

	isConstructed bool
}

// NewItem creates a new Item with validation. New items start available.
func NewItem(
	id, shopID kernel.UUID,
	name, category, description string,
	price kernel.Price,
) (*Item, error) {
	it := &Item{isConstructed: true, available: true}

	if err := errors.Join(
		it.setID(id),
		it.setShopID(shopID),
		it.setName(name),
		it.setCategory(category),
		it.setPrice(price),
	); err != nil {
		return nil, err
	}
	it.description = description

	return it, nil
}

// RestoreItem reconstructs an Item from persistence, including its
// availability flag.
func RestoreItem(
	id, shopID kernel.UUID,
	name, category, description string,
	price kernel.Price,
	available bool,
) (*Item, error) {
	it, err := NewItem(id, shopID, name, category, description, price)
	if err != nil {
		return nil, err
	}
	it.available = available
	return it, nil
}

// Validate ensures the Item instance was properly constructed.
func (it *Item) Validate() error {
	if it == nil || !it.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by their unique identifiers.
func (it *Item) IsEqual(other *Item) bool {
	return other != nil && it.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (it *Item) ID() kernel.UUID {
	return it.id
}

// ShopID returns the identifier of the shop listing the item.
func (it *Item) ShopID() kernel.UUID {
	return it.shopID
}

// Name returns the item's display name.
func (it *Item) Name() string {
	return it.name
}

// Category returns the item's category label.
func (it *Item) Category() string {
	return it.category
}

// Description returns the optional free-text description.
func (it *Item) Description() string {
	return it.description
}

// Price returns the item's price.
func (it *Item) Price() kernel.Price {
	return it.price
}

// IsAvailable reports whether the item can currently be ordered.
func (it *Item) IsAvailable() bool {
	return it.available
}

// Update replaces the item's editable attributes. The shop binding and the
// identity never change.
func (it *Item) Update(name, category, description string, price kernel.Price, available bool) error {
	if err := errors.Join(
		it.setName(name),
		it.setCategory(category),
		it.setPrice(price),
	); err != nil {
		return err
	}
	it.description = description
	it.available = available
	return nil
}

func (it *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	it.id = id
	return nil
}

func (it *Item) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	it.shopID = shopID
	return nil
}

func (it *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	it.name = strings.TrimSpace(name)
	return nil
}

func (it *Item) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errs.NewValueIsRequiredError("category")
	}
	it.category = strings.TrimSpace(category)
	return nil
}

func (it *Item) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	it.price = price
	return nil
}
