package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
)

// PlaceOrderCommandHandler handles order placement. Reading the cart,
// snapshotting the catalog, inserting the order, and clearing the cart happen
// inside one transaction: either the consumer ends up with an order and an
// empty cart, or with their cart untouched.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	checkout   services.Checkout
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory, checkout services.Checkout) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		checkout:   checkout,
	}
}

// Handle processes the placement command and returns the placed order.
//
// Failure modes surface unchanged from the domain: an empty cart, a cart
// spanning multiple shops, a missing or unavailable item, and an order-code
// collision on insert all roll the transaction back.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := getActorInRole(ctx, uow.UserRepository(), cmd.ActorID(), user.Consumer); err != nil {
		return nil, err
	}

	cart, err := uow.CartRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(cart.Items()))
	for _, entry := range cart.Items() {
		ids = append(ids, entry.ItemID())
	}
	items, err := uow.ItemRepository().GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	placed, err := h.checkout.BuildOrder(cart, items, cmd.DeliveryAddress(), cmd.PaymentMethod())
	if err != nil {
		return nil, err
	}

	if err := uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err := uow.CartRepository().Clear(ctx, cmd.ActorID()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
