package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryAssignmentsQueryHandler reads the orders assigned to a delivery
// person. Only shipped and delivered orders can carry an assignment, so the
// status filter doubles as documentation of that invariant.
type GetDeliveryAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryAssignmentsQueryHandler creates a handler for assignment
// reads.
func NewGetDeliveryAssignmentsQueryHandler(db *gorm.DB) GetDeliveryAssignmentsQueryHandler {
	return GetDeliveryAssignmentsQueryHandler{db: db}
}

// Handle executes the query. Shipped orders sort before delivered ones so the
// active workload tops the list.
func (h GetDeliveryAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryAssignmentsQuery,
) ([]GetDeliveryAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	assignments := make([]GetDeliveryAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.code,
			s.name,
			s.location_name,
			u.real_name,
			o.status,
			o.total_bill,
			o.delivery_address,
			o.payment_method
		FROM orders o
		JOIN shops s ON s.id = o.shop_id
		JOIN users u ON u.id = o.consumer_id
		WHERE o.delivery_person_id = ?
		  AND o.status IN (?, ?)
		ORDER BY o.status = ? DESC, o.created_at DESC
	`,
		query.DeliveryPersonID().String(),
		order.Shipped.String(),
		order.Delivered.String(),
		order.Shipped.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var assignment GetDeliveryAssignmentsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&assignment.Code,
			&assignment.ShopName,
			&assignment.ShopLocation,
			&assignment.ConsumerName,
			&assignment.Status,
			&assignment.TotalBill,
			&assignment.DeliveryAddress,
			&assignment.PaymentMethod,
		)
		if err != nil {
			return nil, err
		}

		assignment.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
