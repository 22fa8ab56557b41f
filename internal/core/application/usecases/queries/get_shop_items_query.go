package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetShopItemsQueryIsNotConstructed = errors.New(
		"GetShopItemsQuery must be created via NewGetShopItemsQuery constructor",
	)
)

// GetShopItemsQuery retrieves a shop's catalog. Consumers browse with
// onlyAvailable set; the shop's owner passes false to manage hidden items.
type GetShopItemsQuery struct {
	shopID        kernel.UUID
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewGetShopItemsQuery creates a query for a shop's items.
func NewGetShopItemsQuery(shopID kernel.UUID, onlyAvailable bool) (GetShopItemsQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetShopItemsQuery{}, err
	}

	return GetShopItemsQuery{
		shopID:        shopID,
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetShopItemsQueryIsNotConstructed)
}

// ShopID returns the shop whose catalog is requested.
func (q GetShopItemsQuery) ShopID() kernel.UUID {
	return q.shopID
}

// OnlyAvailable reports whether unavailable items are filtered out.
func (q GetShopItemsQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

// GetShopItemsQueryResponse is one catalog item.
type GetShopItemsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Category    string
	Description string
	PriceUnit   string
	PriceAmount float64
	Available   bool
}
