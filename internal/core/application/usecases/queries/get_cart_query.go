package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves a consumer's cart with item details resolved.
// The cart itself stores only item IDs and quantities; this read model joins
// in current names, prices and owning shops so the client can render the cart
// without extra round trips.
//
// Example:
//
//	query, err := NewGetCartQuery(consumerID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetCartQueryHandler(db)
//
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cart: %w", err)
//	}
//
//	fmt.Printf("%d items, total %.2f\n", cart.ItemCount, cart.Total)
type GetCartQuery struct {
	consumerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given consumer's cart.
func NewGetCartQuery(consumerID kernel.UUID) (GetCartQuery, error) {
	if err := consumerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		consumerID: consumerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// ConsumerID returns the cart owner's ID.
func (q GetCartQuery) ConsumerID() kernel.UUID {
	return q.consumerID
}

// GetCartQueryItem is one cart row with its catalog details resolved.
type GetCartQueryItem struct {
	ItemID      kernel.UUID
	Name        string
	ShopID      kernel.UUID
	ShopName    string
	PriceUnit   string
	PriceAmount float64
	Quantity    int
	Subtotal    float64
}

// GetCartQueryResponse is the resolved cart. ItemCount is the sum of
// quantities, suitable for a cart badge.
type GetCartQueryResponse struct {
	Items     []GetCartQueryItem
	Total     float64
	ItemCount int
}
