package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteItemCommandIsNotConstructed = errors.New(
	"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
)

// DeleteItemCommand represents a seller delisting one of their items.
// Cart entries referencing the item disappear with it; placed orders keep
// their frozen lines.
type DeleteItemCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteItemCommand creates a command to delete an item.
func NewDeleteItemCommand(actorID, itemID kernel.UUID) (DeleteItemCommand, error) {
	cmd := DeleteItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setItemID(itemID),
	); err != nil {
		return DeleteItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

// ActorID returns the acting seller's identifier.
func (c DeleteItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ItemID returns the identifier of the item to delete.
func (c DeleteItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *DeleteItemCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *DeleteItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}
