package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShopItemsQueryHandler lists a shop's catalog sorted by name.
type GetShopItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetShopItemsQueryHandler creates a handler for catalog reads.
func NewGetShopItemsQueryHandler(db *gorm.DB) GetShopItemsQueryHandler {
	return GetShopItemsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetShopItemsQueryHandler) Handle(
	ctx context.Context,
	query GetShopItemsQuery,
) ([]GetShopItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetShopItemsQueryResponse, 0)

	sql := `
		SELECT
			id,
			name,
			category,
			description,
			price_unit,
			price_amount,
			available
		FROM items
		WHERE shop_id = ?
	`
	args := []any{query.ShopID().String()}
	if query.OnlyAvailable() {
		sql += ` AND available`
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetShopItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Category,
			&item.Description,
			&item.PriceUnit,
			&item.PriceAmount,
			&item.Available,
		)
		if err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
