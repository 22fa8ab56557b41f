package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be at least 1")
)

// AddToCartCommand represents a consumer's request to put quantity units of
// an item into their cart. Quantities add to any existing entry and clamp at
// the cart ceiling; requesting more than the ceiling is not an error.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add an item to the actor's cart.
// The quantity must be at least 1; the upper bound is enforced by clamping,
// not rejection.
func NewAddToCartCommand(actorID, itemID kernel.UUID, quantity int) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// ActorID returns the acting consumer's identifier.
func (c AddToCartCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ItemID returns the identifier of the item to add.
func (c AddToCartCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the number of units to add.
func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddToCartCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *AddToCartCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *AddToCartCommand) setQuantity(quantity int) error {
	if quantity < user.MinCartQuantity {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
