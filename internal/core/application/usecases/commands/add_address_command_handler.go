package commands

import (
	"context"
)

// AddAddressCommandHandler handles saving a delivery address to the actor's
// profile.
type AddAddressCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewAddAddressCommandHandler creates a handler for saving addresses.
func NewAddAddressCommandHandler(uowFactory IdentityUoWFactory) AddAddressCommandHandler {
	return AddAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-address command.
func (h *AddAddressCommandHandler) Handle(ctx context.Context, cmd AddAddressCommand) error {
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

	if err := account.AddAddress(cmd.Address()); err != nil {
		return err
	}

	if err := uow.UserRepository().Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
