package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetMyShopsQueryIsNotConstructed = errors.New(
		"GetMyShopsQuery must be created via NewGetMyShopsQuery constructor",
	)
)

// GetMyShopsQuery retrieves every shop a seller owns, for the seller
// dashboard.
type GetMyShopsQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyShopsQuery creates a query for a seller's shops.
func NewGetMyShopsQuery(ownerID kernel.UUID) (GetMyShopsQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetMyShopsQuery{}, err
	}

	return GetMyShopsQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyShopsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyShopsQueryIsNotConstructed)
}

// OwnerID returns the requesting seller's ID.
func (q GetMyShopsQuery) OwnerID() kernel.UUID {
	return q.ownerID
}
