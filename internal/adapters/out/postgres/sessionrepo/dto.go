// Package sessionrepo provides login session persistence. Sessions are plain
// token rows; expiry is enforced on read and swept by a background job.
package sessionrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting sessions.
// ExpiresAt is indexed for the periodic sweep.
type SessionDTO struct {
	Token     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	ExpiresAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for session entities.
func (SessionDTO) TableName() string {
	return "sessions"
}

// fromDomain converts a session aggregate to its database representation.
func fromDomain(session *user.Session) SessionDTO {
	return SessionDTO{
		Token:     session.Token().Bytes(),
		UserID:    session.UserID().Bytes(),
		ExpiresAt: session.ExpiresAt(),
	}
}

// toDomain converts a database DTO to a session aggregate.
func toDomain(dto SessionDTO) (*user.Session, error) {
	token, err := kernel.UUIDFromBytes(dto.Token[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreSession(token, userID, dto.ExpiresAt)
}
