package commands

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// LoginCommandHandler handles authentication. An unknown login and a wrong
// password produce the same error so the endpoint does not leak which
// accounts exist.
type LoginCommandHandler struct {
	uowFactory IdentityUoWFactory
	sessionTTL time.Duration
}

// NewLoginCommandHandler creates a handler for login attempts.
func NewLoginCommandHandler(uowFactory IdentityUoWFactory, sessionTTL time.Duration) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		sessionTTL: sessionTTL,
	}
}

// Handle processes the login command and returns a fresh session on success.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (*user.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().GetByLogin(ctx, cmd.Login())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewNotAuthenticatedError("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte(cmd.Password())); err != nil {
		return nil, errs.NewNotAuthenticatedError("invalid credentials")
	}

	session, err := user.NewSession(account.ID(), h.sessionTTL)
	if err != nil {
		return nil, err
	}

	if err := uow.SessionRepository().Add(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return session, nil
}
