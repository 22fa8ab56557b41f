package commands

import (
	"context"
)

// DeleteItemCommandHandler handles item deletion, with ownership verified
// transitively through the item's shop.
type DeleteItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteItemCommandHandler creates a handler for item deletion.
func NewDeleteItemCommandHandler(uowFactory CatalogUoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
func (h *DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
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

	item, err := loadItemOwnedBy(ctx, uow, cmd.ActorID(), cmd.ItemID())
	if err != nil {
		return err
	}

	if err := uow.ItemRepository().Delete(ctx, item.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
