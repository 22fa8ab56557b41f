package commands

import (
	"context"
)

// UpdateProfileCommandHandler handles profile edits. Any role may edit its
// own profile; the actor can only ever touch the account the session
// resolved to.
type UpdateProfileCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile edits.
func NewUpdateProfileCommandHandler(uowFactory IdentityUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
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

	account, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	if err := account.Rename(cmd.RealName()); err != nil {
		return err
	}

	if err := uow.UserRepository().Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
