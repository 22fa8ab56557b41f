package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetDeliveryAssignmentsQueryIsNotConstructed = errors.New(
		"GetDeliveryAssignmentsQuery must be created via NewGetDeliveryAssignmentsQuery constructor",
	)
)

// GetDeliveryAssignmentsQuery retrieves the orders assigned to a delivery
// person. Active (shipped) assignments come first, completed ones after.
type GetDeliveryAssignmentsQuery struct {
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryAssignmentsQuery creates a query for a delivery person's
// assignments.
func NewGetDeliveryAssignmentsQuery(deliveryPersonID kernel.UUID) (GetDeliveryAssignmentsQuery, error) {
	if err := deliveryPersonID.Validate(); err != nil {
		return GetDeliveryAssignmentsQuery{}, err
	}

	return GetDeliveryAssignmentsQuery{
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryAssignmentsQueryIsNotConstructed)
}

// DeliveryPersonID returns the requesting delivery person's ID.
func (q GetDeliveryAssignmentsQuery) DeliveryPersonID() kernel.UUID {
	return q.deliveryPersonID
}

// GetDeliveryAssignmentsQueryResponse is one assigned order.
type GetDeliveryAssignmentsQueryResponse struct {
	ID              kernel.UUID
	Code            string
	ShopName        string
	ShopLocation    string
	ConsumerName    string
	Status          string
	TotalBill       float64
	DeliveryAddress string
	PaymentMethod   string
}
