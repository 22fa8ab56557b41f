package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShopsQueryHandler lists shops for browsing, filtered by town area when
// one is given.
type GetShopsQueryHandler struct {
	db *gorm.DB
}

// NewGetShopsQueryHandler creates a handler for shop listings.
func NewGetShopsQueryHandler(db *gorm.DB) GetShopsQueryHandler {
	return GetShopsQueryHandler{db: db}
}

// Handle executes the query. Location comparison is case-insensitive so
// "Market Road" and "market road" reach the same shops.
func (h GetShopsQueryHandler) Handle(
	ctx context.Context,
	query GetShopsQuery,
) ([]GetShopsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shops := make([]GetShopsQueryResponse, 0)

	sql := `
		SELECT
			id,
			name,
			category,
			location_name,
			image_url
		FROM shops
	`
	args := make([]any, 0, 1)
	if query.LocationName() != "" {
		sql += ` WHERE LOWER(location_name) = LOWER(?)`
		args = append(args, query.LocationName())
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shop GetShopsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&shop.Name,
			&shop.Category,
			&shop.LocationName,
			&shop.ImageURL,
		)
		if err != nil {
			return nil, err
		}

		shop.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shops, nil
}
