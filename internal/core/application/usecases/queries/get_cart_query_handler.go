package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler resolves a consumer's cart against the catalog with a
// single joined read. Rows come back in the order the items entered the cart.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query. Cart rows whose item has since been deleted are
// dropped by the inner join rather than reported as errors.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		Items: make([]GetCartQueryItem, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.item_id,
			i.name,
			s.id,
			s.name,
			i.price_unit,
			i.price_amount,
			ci.quantity
		FROM cart_items ci
		JOIN items i ON i.id = ci.item_id
		JOIN shops s ON s.id = i.shop_id
		WHERE ci.consumer_id = ?
		ORDER BY ci.position
	`, query.ConsumerID().String()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetCartQueryItem
		var itemID, shopID uuid.UUID

		err = rows.Scan(
			&itemID,
			&item.Name,
			&shopID,
			&item.ShopName,
			&item.PriceUnit,
			&item.PriceAmount,
			&item.Quantity,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		item.ItemID, err = kernel.UUIDFromBytes(itemID[:])
		if err != nil {
			return GetCartQueryResponse{}, err
		}
		item.ShopID, err = kernel.UUIDFromBytes(shopID[:])
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		item.Subtotal = item.PriceAmount * float64(item.Quantity)
		response.Total += item.Subtotal
		response.ItemCount += item.Quantity
		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
