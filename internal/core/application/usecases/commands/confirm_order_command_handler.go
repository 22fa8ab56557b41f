package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// ConfirmOrderCommandHandler handles the placed→confirmed transition.
// Ownership of the order's shop is re-derived inside the transaction, and
// the status write is conditional on the version the order was loaded at.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirm command.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	o, err := loadOrderOwnedBy(ctx, uow, cmd.ActorID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err := o.Confirm(); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// loadOrderOwnedBy loads an order and verifies that the actor is a seller
// owning the shop the order was placed against. The shop is re-derived from
// the order on every call; nothing is trusted from earlier requests.
func loadOrderOwnedBy(ctx context.Context, uow OrderUoW, actorID, orderID kernel.UUID) (*order.Order, error) {
	actor, err := getActorInRole(ctx, uow.UserRepository(), actorID, user.Seller)
	if err != nil {
		return nil, err
	}

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s, err := uow.ShopRepository().Get(ctx, o.ShopID())
	if err != nil {
		return nil, err
	}
	if !s.IsOwnedBy(actor.ID()) {
		return nil, errs.NewNotAuthorizedError(actorID.String(), "order "+orderID.String())
	}

	return o, nil
}
