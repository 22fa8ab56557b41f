package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
)

// AddToCartCommandHandler handles the business logic for adding an item to a
// consumer's cart. The actor and the referenced item are re-verified inside
// the transaction, and the quantity is applied as an atomic clamped add so
// concurrent requests from two devices never lose an update.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddToCartCommandHandler creates a handler for cart add operations.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add command and returns the cart's resulting total
// quantity, the number shown on the cart badge. Only consumers may mutate a
// cart, and the referenced item must exist in the catalog.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := getActorInRole(ctx, uow.UserRepository(), cmd.ActorID(), user.Consumer); err != nil {
		return 0, err
	}

	if _, err := uow.ItemRepository().Get(ctx, cmd.ItemID()); err != nil {
		return 0, err
	}

	cartRepo := uow.CartRepository()
	if _, err := cartRepo.AddQuantity(ctx, cmd.ActorID(), cmd.ItemID(), cmd.Quantity()); err != nil {
		return 0, err
	}

	cart, err := cartRepo.Get(ctx, cmd.ActorID())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cart.TotalQuantity(), nil
}
