package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMyOrdersQueryHandler reads a consumer's order history directly from the
// orders table, bypassing the aggregate for read performance.
type GetMyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMyOrdersQueryHandler creates a handler for consumer order history.
func NewGetMyOrdersQueryHandler(db *gorm.DB) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first.
func (h GetMyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMyOrdersQuery,
) ([]GetMyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetMyOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.code,
			s.name,
			o.status,
			o.total_bill,
			o.delivery_address,
			o.payment_method,
			o.payment_status
		FROM orders o
		JOIN shops s ON s.id = o.shop_id
		WHERE o.consumer_id = ?
		ORDER BY o.created_at DESC
	`, query.ConsumerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order GetMyOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&order.Code,
			&order.ShopName,
			&order.Status,
			&order.TotalBill,
			&order.DeliveryAddress,
			&order.PaymentMethod,
			&order.PaymentStatus,
		)
		if err != nil {
			return nil, err
		}

		order.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
