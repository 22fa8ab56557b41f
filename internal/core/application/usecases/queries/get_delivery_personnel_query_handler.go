package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryPersonnelQueryHandler lists users holding the delivery-person
// role.
type GetDeliveryPersonnelQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryPersonnelQueryHandler creates a handler for the delivery
// directory.
func NewGetDeliveryPersonnelQueryHandler(db *gorm.DB) GetDeliveryPersonnelQueryHandler {
	return GetDeliveryPersonnelQueryHandler{db: db}
}

// Handle executes the query. Location matching is case-insensitive, like the
// shop listing.
func (h GetDeliveryPersonnelQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryPersonnelQuery,
) ([]GetDeliveryPersonnelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	personnel := make([]GetDeliveryPersonnelQueryResponse, 0)

	sql := `
		SELECT
			id,
			real_name,
			location_name
		FROM users
		WHERE role = ?
	`
	args := []any{user.DeliveryPerson.String()}
	if query.LocationName() != "" {
		sql += ` AND LOWER(location_name) = LOWER(?)`
		args = append(args, query.LocationName())
	}
	sql += ` ORDER BY real_name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var person GetDeliveryPersonnelQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&person.RealName,
			&person.LocationName,
		)
		if err != nil {
			return nil, err
		}

		person.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		personnel = append(personnel, person)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return personnel, nil
}
