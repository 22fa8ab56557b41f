package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShopOrdersQueryHandler reads the order queue for all shops owned by a
// seller, newest first.
type GetShopOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShopOrdersQueryHandler creates a handler for seller order queues.
func NewGetShopOrdersQueryHandler(db *gorm.DB) GetShopOrdersQueryHandler {
	return GetShopOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetShopOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShopOrdersQuery,
) ([]GetShopOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetShopOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.code,
			s.name,
			u.real_name,
			o.delivery_person_id,
			o.status,
			o.total_bill,
			o.delivery_address,
			o.payment_method,
			o.payment_status
		FROM orders o
		JOIN shops s ON s.id = o.shop_id
		JOIN users u ON u.id = o.consumer_id
		WHERE s.owner_id = ?
		ORDER BY o.created_at DESC
	`, query.OwnerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order GetShopOrdersQueryResponse
		var id uuid.UUID
		var deliveryPersonID sql.Null[uuid.UUID]

		err = rows.Scan(
			&id,
			&order.Code,
			&order.ShopName,
			&order.ConsumerName,
			&deliveryPersonID,
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
		if deliveryPersonID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(deliveryPersonID.V[:])
			if idErr != nil {
				return nil, idErr
			}
			order.DeliveryPersonID = &assigned
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
