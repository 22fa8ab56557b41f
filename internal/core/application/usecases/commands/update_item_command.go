package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a seller editing one of their items,
// including toggling its availability.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	itemID      kernel.UUID
	name        string
	category    string
	description string
	price       kernel.Price
	available   bool

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to edit an item's attributes.
func NewUpdateItemCommand(
	actorID, itemID kernel.UUID,
	name, category, description string,
	price kernel.Price,
	available bool,
) (UpdateItemCommand, error) {
	cmd := UpdateItemCommand{
		description: description,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setPrice(price),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// ActorID returns the acting seller's identifier.
func (c UpdateItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ItemID returns the identifier of the item to edit.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new display name.
func (c UpdateItemCommand) Name() string {
	return c.name
}

// Category returns the new category label.
func (c UpdateItemCommand) Category() string {
	return c.category
}

// Description returns the new free-text description.
func (c UpdateItemCommand) Description() string {
	return c.description
}

// Price returns the new price.
func (c UpdateItemCommand) Price() kernel.Price {
	return c.price
}

// Available returns the new availability flag.
func (c UpdateItemCommand) Available() bool {
	return c.available
}

func (c *UpdateItemCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdateItemCommand) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrCategoryIsRequired
	}
	c.category = category
	return nil
}

func (c *UpdateItemCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
