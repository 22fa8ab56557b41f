package services

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when a consumer attempts to place an order from
// an empty cart.
var ErrCartIsEmpty = errors.New("cart is empty")

// ErrMixedShopCart is returned when the cart references items from more than
// one shop. An order is placed against exactly one shop, and a mixed cart is
// rejected outright instead of silently ordering from the first shop found.
var ErrMixedShopCart = errors.New("cart contains items from multiple shops")

// ErrItemNotAvailable is returned when a cart references an item its seller
// has marked unavailable.
var ErrItemNotAvailable = errors.New("item is not available")

// Checkout is a domain service that converts a consumer's cart into a freshly
// placed order.
//
// Key responsibilities:
//   - Rejecting empty and mixed-shop carts
//   - Rejecting carts referencing missing or unavailable items
//   - Freezing item names and prices into immutable order lines
//
// Business rules:
//   - An order belongs to exactly one shop
//   - Lines are priced from the item's single price; later catalog edits do
//     not affect placed orders
//   - The order starts as Placed with a pending payment
type Checkout struct{}

// NewCheckout creates a new Checkout instance.
func NewCheckout() Checkout {
	return Checkout{}
}

// BuildOrder assembles a placed order from the cart and the current catalog
// state of the referenced items.
//
// Parameters:
//   - cart: The consumer's cart (must be constructed and non-empty)
//   - items: The referenced items keyed by ID, as loaded in the placement
//     transaction
//   - deliveryAddress: Free-text destination chosen at checkout
//   - paymentMethod: Payment method chosen at checkout
//
// Returns:
//   - *order.Order: The placed order if every rule passes
//   - error: ErrCartIsEmpty, ErrMixedShopCart, ErrItemNotAvailable, an
//     object-not-found error for a dangling item reference, or a validation
//     error from the order constructor
func (c Checkout) BuildOrder(
	cart *user.Cart,
	items map[kernel.UUID]*shop.Item,
	deliveryAddress, paymentMethod string,
) (*order.Order, error) {
	if err := cart.Validate(); err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	var shopID kernel.UUID
	lines := make([]order.LineItem, 0, len(cart.Items()))

	for _, entry := range cart.Items() {
		item, ok := items[entry.ItemID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("item", entry.ItemID())
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if !item.IsAvailable() {
			return nil, fmt.Errorf("%s: %w", item.Name(), ErrItemNotAvailable)
		}

		if shopID.Validate() != nil {
			shopID = item.ShopID()
		} else if !shopID.IsEqual(item.ShopID()) {
			return nil, ErrMixedShopCart
		}

		line, err := order.NewLineItem(item.ID(), item.Name(), item.Price(), entry.Quantity())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	payment, err := order.NewPayment(paymentMethod)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		kernel.NewUUID(),
		order.NewOrderCode(),
		cart.ConsumerID(),
		shopID,
		lines,
		deliveryAddress,
		payment,
	)
}
