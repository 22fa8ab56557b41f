package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrPaymentMethodIsRequired   = errors.New("payment method is required")
)

// PlaceOrderCommand represents a consumer's request to convert their cart
// into an order delivered to the given address.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	actorID         kernel.UUID
	deliveryAddress string
	paymentMethod   string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order from the actor's
// cart.
func NewPlaceOrderCommand(actorID kernel.UUID, deliveryAddress, paymentMethod string) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// ActorID returns the acting consumer's identifier.
func (c PlaceOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// DeliveryAddress returns the free-text destination address.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PaymentMethod returns the payment method chosen at checkout.
func (c PlaceOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *PlaceOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if strings.TrimSpace(deliveryAddress) == "" {
		return ErrDeliveryAddressIsRequired
	}
	c.deliveryAddress = strings.TrimSpace(deliveryAddress)
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod string) error {
	if strings.TrimSpace(paymentMethod) == "" {
		return ErrPaymentMethodIsRequired
	}
	c.paymentMethod = strings.TrimSpace(paymentMethod)
	return nil
}
