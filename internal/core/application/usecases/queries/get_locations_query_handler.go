package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetLocationsQueryHandler lists the town areas shops are registered in.
type GetLocationsQueryHandler struct {
	db *gorm.DB
}

// NewGetLocationsQueryHandler creates a handler for location listings.
func NewGetLocationsQueryHandler(db *gorm.DB) GetLocationsQueryHandler {
	return GetLocationsQueryHandler{db: db}
}

// Handle executes the query. Locations are returned sorted, one entry per
// distinct name as stored.
func (h GetLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetLocationsQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations := make([]string, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT location_name
		FROM shops
		ORDER BY location_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var location string
		if err = rows.Scan(&location); err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
