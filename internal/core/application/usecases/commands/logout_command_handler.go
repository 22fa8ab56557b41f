package commands

import (
	"context"
)

// LogoutCommandHandler handles session invalidation.
type LogoutCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewLogoutCommandHandler creates a handler for logout.
func NewLogoutCommandHandler(uowFactory IdentityUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the logout command.
func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SessionRepository().Delete(ctx, cmd.Token()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
