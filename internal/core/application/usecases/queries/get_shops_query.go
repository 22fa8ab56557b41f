package queries

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetShopsQueryIsNotConstructed = errors.New(
		"GetShopsQuery must be created via NewGetShopsQuery constructor",
	)
)

// GetShopsQuery retrieves shops, optionally narrowed to one town area.
// Location matching is case-insensitive; an empty location lists every shop.
//
// Example:
//
//	query := NewGetShopsQuery("market road")
//	handler := NewGetShopsQueryHandler(db)
//
//	shops, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list shops: %w", err)
//	}
//
//	fmt.Printf("Found %d shops\n", len(shops))
type GetShopsQuery struct {
	locationName string

	guard guard.ConstructorGuard
}

// NewGetShopsQuery creates a query to list shops in the given location.
func NewGetShopsQuery(locationName string) GetShopsQuery {
	return GetShopsQuery{
		locationName: strings.TrimSpace(locationName),
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetShopsQuery) Validate() error {
	return q.guard.Validate(ErrGetShopsQueryIsNotConstructed)
}

// LocationName returns the requested town area, empty for all shops.
func (q GetShopsQuery) LocationName() string {
	return q.locationName
}

// GetShopsQueryResponse is one shop in a location listing.
type GetShopsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Category     string
	LocationName string
	ImageURL     string
}
