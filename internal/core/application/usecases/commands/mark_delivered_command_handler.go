package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
)

// MarkDeliveredCommandHandler handles the shipped→delivered transition.
// The actor must hold the delivery-person role and be the person the order
// was assigned to; both checks run inside the transaction. Cash-on-delivery
// payments settle together with the delivery, in the same write.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for order completion.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivered command.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	actor, err := getActorInRole(ctx, uow.UserRepository(), cmd.ActorID(), user.DeliveryPerson)
	if err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := o.MarkDelivered(actor.ID()); err != nil {
		return err
	}

	if o.Payment().Method() == order.PaymentMethodCashOnDelivery {
		if err := o.SettlePayment(order.PaymentCompleted); err != nil {
			return err
		}
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
