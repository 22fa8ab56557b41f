package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a freshly placed order with its frozen lines.
	// Returns a conflict error if the order code is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status transition. The write is conditional on the
	// version the aggregate was loaded at; if another transition won the
	// race, a conflict error is returned and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
