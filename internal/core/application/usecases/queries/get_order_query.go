package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its frozen line items.
// The response carries the consumer, shop owner and assigned delivery person
// so the transport layer can decide whether the caller may see it.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's ID.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryLine is one frozen order line. Name and price are the values
// captured at placement, not the catalog's current ones.
type GetOrderQueryLine struct {
	ItemID      kernel.UUID
	Name        string
	PriceUnit   string
	PriceAmount float64
	Quantity    int
	Subtotal    float64
}

// GetOrderQueryResponse is the full order read model. DeliveryPersonID is nil
// until the order has been assigned.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	Code             string
	ConsumerID       kernel.UUID
	ShopID           kernel.UUID
	ShopName         string
	ShopOwnerID      kernel.UUID
	DeliveryPersonID *kernel.UUID
	Status           string
	TotalBill        float64
	DeliveryAddress  string
	PaymentMethod    string
	PaymentStatus    string
	Lines            []GetOrderQueryLine
}
