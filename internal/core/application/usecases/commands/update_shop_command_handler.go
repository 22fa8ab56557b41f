package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// UpdateShopCommandHandler handles shop edits. Ownership is re-checked
// against storage on every call.
type UpdateShopCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateShopCommandHandler creates a handler for shop edits.
func NewUpdateShopCommandHandler(uowFactory CatalogUoWFactory) UpdateShopCommandHandler {
	return UpdateShopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h *UpdateShopCommandHandler) Handle(ctx context.Context, cmd UpdateShopCommand) error {
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

	if err := s.Update(cmd.Name(), cmd.Category(), cmd.LocationName(), cmd.ImageURL()); err != nil {
		return err
	}

	if err := uow.ShopRepository().Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
