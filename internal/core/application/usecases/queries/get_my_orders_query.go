package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetMyOrdersQueryIsNotConstructed = errors.New(
		"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
	)
)

// GetMyOrdersQuery retrieves a consumer's order history, newest first.
type GetMyOrdersQuery struct {
	consumerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyOrdersQuery creates a query for the given consumer's orders.
func NewGetMyOrdersQuery(consumerID kernel.UUID) (GetMyOrdersQuery, error) {
	if err := consumerID.Validate(); err != nil {
		return GetMyOrdersQuery{}, err
	}

	return GetMyOrdersQuery{
		consumerID: consumerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

// ConsumerID returns the requesting consumer's ID.
func (q GetMyOrdersQuery) ConsumerID() kernel.UUID {
	return q.consumerID
}

// GetMyOrdersQueryResponse is one order summary row in a consumer's history.
type GetMyOrdersQueryResponse struct {
	ID              kernel.UUID
	Code            string
	ShopName        string
	Status          string
	TotalBill       float64
	DeliveryAddress string
	PaymentMethod   string
	PaymentStatus   string
}
