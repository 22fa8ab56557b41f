package userrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
// Requires the connection to be opened with TranslateError so unique
// violations surface as gorm.ErrDuplicatedKey.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user to the database. A taken username or email comes back
// as a conflict error.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("login", dto.Username, err)
		}
		return err
	}

	return nil
}

// Update saves an existing user to the database. The address list is replaced
// wholesale; the aggregate owns its ordering.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("real_name", "location_name", "password_hash").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", dto.ID).
		Delete(&AddressDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Addresses) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&dto.Addresses).Error
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_addresses.position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLogin retrieves a user by username or email, matched verbatim.
func (r *GormUserRepository) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	if login == "" {
		return nil, errs.NewValueIsRequiredError("login")
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_addresses.position")
		}).
		First(&dto, "username = ? OR email = ?", login, login).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", login)
		}
		return nil, err
	}

	return toDomain(dto)
}
