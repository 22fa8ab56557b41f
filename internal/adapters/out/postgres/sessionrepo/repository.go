package sessionrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Add persists a new session.
func (r *GormSessionRepository) Add(ctx context.Context, session *user.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	dto := fromDomain(session)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a session by token.
func (r *GormSessionRepository) Get(ctx context.Context, token kernel.UUID) (*user.Session, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", token.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", token.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a session, silently if the token is unknown.
func (r *GormSessionRepository) Delete(ctx context.Context, token kernel.UUID) error {
	if err := token.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("token = ?", token.Bytes()).
		Delete(&SessionDTO{}).Error
}

// DeleteExpired removes every session expired as of now and reports how many
// rows went away.
func (r *GormSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&SessionDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
