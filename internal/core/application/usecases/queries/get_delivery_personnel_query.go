package queries

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetDeliveryPersonnelQueryIsNotConstructed = errors.New(
		"GetDeliveryPersonnelQuery must be created via NewGetDeliveryPersonnelQuery constructor",
	)
)

// GetDeliveryPersonnelQuery retrieves the delivery-person directory a seller
// picks assignees from, optionally narrowed to one town area.
type GetDeliveryPersonnelQuery struct {
	locationName string

	guard guard.ConstructorGuard
}

// NewGetDeliveryPersonnelQuery creates a query for the delivery directory.
// An empty location lists everyone.
func NewGetDeliveryPersonnelQuery(locationName string) GetDeliveryPersonnelQuery {
	return GetDeliveryPersonnelQuery{
		locationName: strings.TrimSpace(locationName),
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryPersonnelQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryPersonnelQueryIsNotConstructed)
}

// LocationName returns the requested town area, empty for all.
func (q GetDeliveryPersonnelQuery) LocationName() string {
	return q.locationName
}

// GetDeliveryPersonnelQueryResponse is one entry of the delivery directory.
type GetDeliveryPersonnelQueryResponse struct {
	ID           kernel.UUID
	RealName     string
	LocationName string
}
