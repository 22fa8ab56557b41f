package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMyShopsQueryHandler lists a seller's shops. Reuses the shop listing
// response shape since the rows are the same.
type GetMyShopsQueryHandler struct {
	db *gorm.DB
}

// NewGetMyShopsQueryHandler creates a handler for seller shop listings.
func NewGetMyShopsQueryHandler(db *gorm.DB) GetMyShopsQueryHandler {
	return GetMyShopsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetMyShopsQueryHandler) Handle(
	ctx context.Context,
	query GetMyShopsQuery,
) ([]GetShopsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shops := make([]GetShopsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			location_name,
			image_url
		FROM shops
		WHERE owner_id = ?
		ORDER BY name
	`, query.OwnerID().String()).Rows()
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
