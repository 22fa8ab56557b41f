package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetProfileQueryIsNotConstructed = errors.New(
		"GetProfileQuery must be created via NewGetProfileQuery constructor",
	)
)

// GetProfileQuery retrieves a user's own profile including saved addresses.
type GetProfileQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query for the given user's profile.
func NewGetProfileQuery(userID kernel.UUID) (GetProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}

	return GetProfileQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// UserID returns the profile owner's ID.
func (q GetProfileQuery) UserID() kernel.UUID {
	return q.userID
}

// GetProfileQueryResponse is a user's profile. The password hash never leaves
// the write side.
type GetProfileQueryResponse struct {
	ID           kernel.UUID
	Username     string
	RealName     string
	Email        string
	Role         string
	LocationName string
	Addresses    []string
}
