package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetShopOrdersQueryIsNotConstructed = errors.New(
		"GetShopOrdersQuery must be created via NewGetShopOrdersQuery constructor",
	)
)

// GetShopOrdersQuery retrieves the incoming orders for every shop a seller
// owns. Scoping by owner rather than shop keeps the seller from reading
// another shop's queue by guessing IDs.
type GetShopOrdersQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShopOrdersQuery creates a query for a seller's incoming orders.
func NewGetShopOrdersQuery(ownerID kernel.UUID) (GetShopOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetShopOrdersQuery{}, err
	}

	return GetShopOrdersQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShopOrdersQueryIsNotConstructed)
}

// OwnerID returns the requesting seller's ID.
func (q GetShopOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetShopOrdersQueryResponse is one order in a seller's queue.
type GetShopOrdersQueryResponse struct {
	ID               kernel.UUID
	Code             string
	ShopName         string
	ConsumerName     string
	DeliveryPersonID *kernel.UUID
	Status           string
	TotalBill        float64
	DeliveryAddress  string
	PaymentMethod    string
	PaymentStatus    string
}
