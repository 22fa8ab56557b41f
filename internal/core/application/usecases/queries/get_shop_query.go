package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetShopQueryIsNotConstructed = errors.New(
		"GetShopQuery must be created via NewGetShopQuery constructor",
	)
)

// GetShopQuery retrieves one shop by ID for the shop detail page.
type GetShopQuery struct {
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShopQuery creates a query for a single shop.
func NewGetShopQuery(shopID kernel.UUID) (GetShopQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetShopQuery{}, err
	}

	return GetShopQuery{
		shopID: shopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopQuery) Validate() error {
	return q.guard.Validate(ErrGetShopQueryIsNotConstructed)
}

// ShopID returns the requested shop's ID.
func (q GetShopQuery) ShopID() kernel.UUID {
	return q.shopID
}

// GetShopQueryResponse is the shop detail read model. OwnerID lets the
// transport layer distinguish the owner's view from a visitor's.
type GetShopQueryResponse struct {
	ID           kernel.UUID
	OwnerID      kernel.UUID
	Name         string
	Category     string
	LocationName string
	ImageURL     string
}
