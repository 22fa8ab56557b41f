package user

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrSessionIsNotConstructed is returned when a Session instance was not
// created through NewSession or RestoreSession.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession")

// Session is a server-side login session. The token is an opaque UUID handed
// to the client as a cookie; expired sessions are swept by a background job.
type Session struct {
	token     kernel.UUID
	userID    kernel.UUID
	expiresAt time.Time

	isConstructed bool
}

// NewSession creates a session for the user expiring after ttl.
func NewSession(userID kernel.UUID, ttl time.Duration) (*Session, error) {
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}
	s := &Session{
		token:         kernel.NewUUID(),
		expiresAt:     time.Now().Add(ttl),
		isConstructed: true,
	}
	if err := s.setUserID(userID); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreSession reconstructs a session from persistence.
func RestoreSession(token, userID kernel.UUID, expiresAt time.Time) (*Session, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}
	if expiresAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("expiresAt")
	}
	s := &Session{
		token:         token,
		expiresAt:     expiresAt,
		isConstructed: true,
	}
	if err := s.setUserID(userID); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate ensures the Session instance was properly constructed.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// Token returns the opaque session token.
func (s *Session) Token() kernel.UUID {
	return s.token
}

// UserID returns the identifier of the logged-in user.
func (s *Session) UserID() kernel.UUID {
	return s.userID
}

// ExpiresAt returns the session's expiry instant.
func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// IsExpired reports whether the session has expired as of now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

func (s *Session) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	s.userID = userID
	return nil
}
