package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// AssignDeliveryCommandHandler handles the confirmed→shipped transition.
// The target user must hold the delivery-person role, checked in the same
// transaction as the assignment; the assignment and the status change are
// one write.
type AssignDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment.
func NewAssignDeliveryCommandHandler(uowFactory OrderUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assign command.
func (h *AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
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

	target, err := uow.UserRepository().Get(ctx, cmd.DeliveryPersonID())
	if err != nil {
		return err
	}
	if target.Role() != user.DeliveryPerson {
		return errs.NewValueIsInvalidError("deliveryPersonId")
	}

	if err := o.Assign(target.ID()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
