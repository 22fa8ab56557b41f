package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
)

// ClearCartCommandHandler handles emptying a consumer's cart on explicit
// request. The post-placement clear is not this command; it happens inside
// the order placement transaction.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clears.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear command.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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

	if err := uow.CartRepository().Clear(ctx, cmd.ActorID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
