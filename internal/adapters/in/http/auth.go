package http

import (
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the session token. A bearer token
// in the Authorization header works too, for non-browser clients.
const SessionCookieName = "session_token"

const actorIDContextKey = "actorID"

// AuthMiddleware resolves the session token on every protected request and
// puts the authenticated user's ID into the echo context. Role and ownership
// checks stay in the use cases; the middleware only answers "who is calling".
type AuthMiddleware struct {
	sessions ports.SessionRepository
}

// NewAuthMiddleware creates the session-resolving middleware.
func NewAuthMiddleware(sessions ports.SessionRepository) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Require is the echo middleware protecting authenticated routes.
func (m *AuthMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token, err := extractSessionToken(ctx)
		if err != nil {
			return respondError(ctx, err)
		}

		session, err := m.sessions.Get(ctx.Request().Context(), token)
		if err != nil {
			return respondError(ctx, errs.NewNotAuthenticatedErrorWithCause("unknown session", err))
		}
		if session.IsExpired(time.Now()) {
			return respondError(ctx, errs.NewNotAuthenticatedError("session expired"))
		}

		ctx.Set(actorIDContextKey, session.UserID())
		return next(ctx)
	}
}

func extractSessionToken(ctx echo.Context) (kernel.UUID, error) {
	raw := ""
	if cookie, err := ctx.Cookie(SessionCookieName); err == nil {
		raw = cookie.Value
	} else if header := ctx.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		raw = strings.TrimPrefix(header, "Bearer ")
	}

	if raw == "" {
		return kernel.UUID{}, errs.NewNotAuthenticatedError("missing session token")
	}

	token, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewNotAuthenticatedErrorWithCause("malformed session token", err)
	}

	return token, nil
}

// actorID returns the authenticated user's ID placed by the middleware.
func actorID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(actorIDContextKey).(kernel.UUID)
	return id
}
