package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents a seller handing a confirmed order to a
// delivery person, which ships the order.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	actorID          kernel.UUID
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign a delivery person to
// an order.
func NewAssignDeliveryCommand(actorID, orderID, deliveryPersonID kernel.UUID) (AssignDeliveryCommand, error) {
	cmd := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setOrderID(orderID),
		cmd.setDeliveryPersonID(deliveryPersonID),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// ActorID returns the acting seller's identifier.
func (c AssignDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrderID returns the identifier of the order to ship.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryPersonID returns the identifier of the delivery person taking the
// order.
func (c AssignDeliveryCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

func (c *AssignDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *AssignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}
	c.deliveryPersonID = deliveryPersonID
	return nil
}
