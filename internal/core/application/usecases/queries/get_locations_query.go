package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrGetLocationsQueryIsNotConstructed = errors.New(
		"GetLocationsQuery must be created via NewGetLocationsQuery constructor",
	)
)

// GetLocationsQuery retrieves the distinct town areas that have at least one
// shop. Feeds the location picker on the browse screen.
type GetLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLocationsQuery creates a parameterless query for known locations.
func NewGetLocationsQuery() GetLocationsQuery {
	return GetLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationsQueryIsNotConstructed)
}
