package order

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// LineItem is one frozen line of an order: the item's name and price as they
// were at the moment of placement, with the ordered quantity. Later catalog
// edits never change a placed order.
type LineItem struct {
	itemID   kernel.UUID
	name     string
	price    kernel.Price
	quantity int
}

// NewLineItem creates a frozen order line from a catalog snapshot.
func NewLineItem(itemID kernel.UUID, name string, price kernel.Price, quantity int) (LineItem, error) {
	if err := itemID.Validate(); err != nil {
		return LineItem{}, err
	}
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("name")
	}
	if err := price.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxLineQuantity)
	}
	if quantity > MaxLineQuantity {
		return LineItem{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxLineQuantity)
	}

	return LineItem{itemID: itemID, name: name, price: price, quantity: quantity}, nil
}

// ItemID returns the identifier of the catalog item the line was built from.
func (li LineItem) ItemID() kernel.UUID {
	return li.itemID
}

// Name returns the item name as frozen at placement.
func (li LineItem) Name() string {
	return li.name
}

// Price returns the unit price as frozen at placement.
func (li LineItem) Price() kernel.Price {
	return li.price
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns price × quantity for this line.
func (li LineItem) Subtotal() float64 {
	return li.price.Amount() * float64(li.quantity)
}
