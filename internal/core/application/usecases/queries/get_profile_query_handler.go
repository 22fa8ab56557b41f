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

// GetProfileQueryHandler reads a user's profile and saved addresses.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile reads.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the query. A missing user surfaces as ObjectNotFoundError.
func (h GetProfileQueryHandler) Handle(
	ctx context.Context,
	query GetProfileQuery,
) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	var response GetProfileQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			real_name,
			email,
			role,
			location_name
		FROM users
		WHERE id = ?
	`, query.UserID().String()).Row()

	err := row.Scan(
		&id,
		&response.Username,
		&response.RealName,
		&response.Email,
		&response.Role,
		&response.LocationName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProfileQueryResponse{}, errs.NewObjectNotFoundError("user", query.UserID())
	}
	if err != nil {
		return GetProfileQueryResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetProfileQueryResponse{}, err
	}

	response.Addresses = make([]string, 0)
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT address
		FROM user_addresses
		WHERE user_id = ?
		ORDER BY position
	`, query.UserID().String()).Rows()
	if err != nil {
		return GetProfileQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var address string
		if err = rows.Scan(&address); err != nil {
			return GetProfileQueryResponse{}, err
		}
		response.Addresses = append(response.Addresses, address)
	}

	if err = rows.Err(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	return response, nil
}
