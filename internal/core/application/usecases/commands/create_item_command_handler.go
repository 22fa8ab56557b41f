package commands

import (
	"context"

	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// CreateItemCommandHandler handles listing a new item. The actor must own the
// target shop; ownership is re-derived from storage inside the transaction.
type CreateItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateItemCommandHandler creates a handler for item creation.
func NewCreateItemCommandHandler(uowFactory CatalogUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create command.
func (h *CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
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

	actor, err := getActorInRole(ctx, uow.UserRepository(), cmd.ActorID(), user.Seller)
	if err != nil {
		return err
	}

	s, err := uow.ShopRepository().Get(ctx, cmd.ShopID())
	if err != nil {
		return err
	}
	if !s.IsOwnedBy(actor.ID()) {
		return errs.NewNotAuthorizedError(actor.ID().String(), "shop "+s.ID().String())
	}

	item, err := shop.NewItem(cmd.ItemID(), s.ID(), cmd.Name(), cmd.Category(), cmd.Description(), cmd.Price())
	if err != nil {
		return err
	}

	if err := uow.ItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
