package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveFromCartCommandIsNotConstructed = errors.New(
	"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
)

// RemoveFromCartCommand represents a consumer's request to drop one item from
// their cart. Removing an item that is not in the cart succeeds quietly.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveFromCartCommand creates a command to remove an item from the
// actor's cart.
func NewRemoveFromCartCommand(actorID, itemID kernel.UUID) (RemoveFromCartCommand, error) {
	cmd := RemoveFromCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setItemID(itemID),
	); err != nil {
		return RemoveFromCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

// ActorID returns the acting consumer's identifier.
func (c RemoveFromCartCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ItemID returns the identifier of the item to remove.
func (c RemoveFromCartCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RemoveFromCartCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *RemoveFromCartCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}
