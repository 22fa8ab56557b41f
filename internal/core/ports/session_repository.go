package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// SessionRepository defines the persistence contract for login sessions.
type SessionRepository interface {
	// Add persists a new session.
	Add(ctx context.Context, session *user.Session) error

	// Get retrieves a session by its token.
	Get(ctx context.Context, token kernel.UUID) (*user.Session, error)

	// Delete removes a session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token kernel.UUID) error

	// DeleteExpired removes every session expired as of now and returns the
	// number of rows removed. Used by the background sweep job.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
