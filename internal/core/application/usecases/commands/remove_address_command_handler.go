package commands

import (
	"context"
)

// RemoveAddressCommandHandler handles deleting a saved delivery address from
// the actor's profile.
type RemoveAddressCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewRemoveAddressCommandHandler creates a handler for address removal.
func NewRemoveAddressCommandHandler(uowFactory IdentityUoWFactory) RemoveAddressCommandHandler {
	return RemoveAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-address command.
func (h *RemoveAddressCommandHandler) Handle(ctx context.Context, cmd RemoveAddressCommand) error {
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

	account.RemoveAddress(cmd.Address())

	if err := uow.UserRepository().Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
