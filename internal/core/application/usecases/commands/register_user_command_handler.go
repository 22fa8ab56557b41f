package commands

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// RegisterUserCommandHandler handles account registration. The password is
// hashed with bcrypt before anything touches storage, and a session is
// created in the same transaction so registration doubles as login.
type RegisterUserCommandHandler struct {
	uowFactory IdentityUoWFactory
	sessionTTL time.Duration
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory IdentityUoWFactory, sessionTTL time.Duration) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		sessionTTL: sessionTTL,
	}
}

// Handle processes the registration command and returns the auto-login
// session. A taken username or email surfaces as a conflict from the user
// repository.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account, err := user.NewUser(
		kernel.NewUUID(),
		cmd.Username(),
		cmd.RealName(),
		cmd.Email(),
		string(hash),
		cmd.Role(),
		cmd.LocationName(),
	)
	if err != nil {
		return nil, err
	}

	session, err := user.NewSession(account.ID(), h.sessionTTL)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().Add(ctx, account); err != nil {
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
