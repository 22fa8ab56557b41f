package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
)

// RemoveFromCartCommandHandler handles dropping one item from a consumer's
// cart. Removal is idempotent: removing an absent item succeeds.
type RemoveFromCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveFromCartCommandHandler creates a handler for cart removals.
func NewRemoveFromCartCommandHandler(uowFactory CartUoWFactory) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove command.
func (h *RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
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

	if _, err := getActorInRole(ctx, uow.UserRepository(), cmd.ActorID(), user.Consumer); err != nil {
		return err
	}

	if err := uow.CartRepository().RemoveItem(ctx, cmd.ActorID(), cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
