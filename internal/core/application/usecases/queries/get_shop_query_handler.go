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

// GetShopQueryHandler reads one shop row.
type GetShopQueryHandler struct {
	db *gorm.DB
}

// NewGetShopQueryHandler creates a handler for shop detail reads.
func NewGetShopQueryHandler(db *gorm.DB) GetShopQueryHandler {
	return GetShopQueryHandler{db: db}
}

// Handle executes the query. A missing shop surfaces as ObjectNotFoundError.
func (h GetShopQueryHandler) Handle(
	ctx context.Context,
	query GetShopQuery,
) (GetShopQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShopQueryResponse{}, err
	}

	var response GetShopQueryResponse
	var id, ownerID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			name,
			category,
			location_name,
			image_url
		FROM shops
		WHERE id = ?
	`, query.ShopID().String()).Row()

	err := row.Scan(
		&id,
		&ownerID,
		&response.Name,
		&response.Category,
		&response.LocationName,
		&response.ImageURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShopQueryResponse{}, errs.NewObjectNotFoundError("shop", query.ShopID())
	}
	if err != nil {
		return GetShopQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetShopQueryResponse{}, err
	}
	if response.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return GetShopQueryResponse{}, err
	}

	return response, nil
}
