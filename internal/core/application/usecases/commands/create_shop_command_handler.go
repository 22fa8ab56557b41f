package commands

import (
	"context"

	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"
)

// CreateShopCommandHandler handles opening a new shop for a seller.
type CreateShopCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateShopCommandHandler creates a handler for shop creation.
func NewCreateShopCommandHandler(uowFactory CatalogUoWFactory) CreateShopCommandHandler {
	return CreateShopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create command. Only sellers may open shops.
func (h *CreateShopCommandHandler) Handle(ctx context.Context, cmd CreateShopCommand) error {
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

	s, err := shop.NewShop(cmd.ShopID(), actor.ID(), cmd.Name(), cmd.Category(), cmd.LocationName(), cmd.ImageURL())
	if err != nil {
		return err
	}

	if err := uow.ShopRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
