package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order plus its lines. Two statements,
// one for the header and one for the lines, both against the read side.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A missing order surfaces as ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	var id, consumerID, shopID, ownerID uuid.UUID
	var deliveryPersonID sql.Null[uuid.UUID]

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.code,
			o.consumer_id,
			o.shop_id,
			s.name,
			s.owner_id,
			o.delivery_person_id,
			o.status,
			o.total_bill,
			o.delivery_address,
			o.payment_method,
			o.payment_status
		FROM orders o
		JOIN shops s ON s.id = o.shop_id
		WHERE o.id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&response.Code,
		&consumerID,
		&shopID,
		&response.ShopName,
		&ownerID,
		&deliveryPersonID,
		&response.Status,
		&response.TotalBill,
		&response.DeliveryAddress,
		&response.PaymentMethod,
		&response.PaymentStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.ConsumerID, err = kernel.UUIDFromBytes(consumerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.ShopOwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if deliveryPersonID.Valid {
		assigned, idErr := kernel.UUIDFromBytes(deliveryPersonID.V[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		response.DeliveryPersonID = &assigned
	}

	response.Lines, err = h.loadLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryLine, error) {
	lines := make([]GetOrderQueryLine, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			name,
			price_unit,
			price_amount,
			quantity
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetOrderQueryLine
		var itemID uuid.UUID

		err = rows.Scan(
			&itemID,
			&line.Name,
			&line.PriceUnit,
			&line.PriceAmount,
			&line.Quantity,
		)
		if err != nil {
			return nil, err
		}

		line.ItemID, err = kernel.UUIDFromBytes(itemID[:])
		if err != nil {
			return nil, err
		}
		line.Subtotal = line.PriceAmount * float64(line.Quantity)
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
