package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// UpdateItemCommandHandler handles item edits. Ownership is verified
// transitively through the item's shop on every call, never cached from a
// previous request.
type UpdateItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for item edits.
func NewUpdateItemCommandHandler(uowFactory CatalogUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
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

	if err := item.Update(cmd.Name(), cmd.Category(), cmd.Description(), cmd.Price(), cmd.Available()); err != nil {
		return err
	}

	if err := uow.ItemRepository().Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// loadItemOwnedBy loads an item and verifies that the actor is a seller
// owning the shop the item is listed in.
func loadItemOwnedBy(ctx context.Context, uow CatalogUoW, actorID, itemID kernel.UUID) (*shop.Item, error) {
	actor, err := getActorInRole(ctx, uow.UserRepository(), actorID, user.Seller)
	if err != nil {
		return nil, err
	}

	item, err := uow.ItemRepository().Get(ctx, itemID)
	if err != nil {
		return nil, err
	}

	s, err := uow.ShopRepository().Get(ctx, item.ShopID())
	if err != nil {
		return nil, err
	}
	if !s.IsOwnedBy(actor.ID()) {
		return nil, errs.NewNotAuthorizedError(actorID.String(), "item "+itemID.String())
	}

	return item, nil
}
