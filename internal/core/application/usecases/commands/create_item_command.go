package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateItemCommandIsNotConstructed = errors.New(
		"CreateItemCommand must be created via NewCreateItemCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("item name is required")
)

// CreateItemCommand represents a seller listing a new item in one of their
// shops. The price carries exactly one pricing unit, resolved before the
// command is built.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	itemID      kernel.UUID
	shopID      kernel.UUID
	name        string
	category    string
	description string
	price       kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to list an item.
func NewCreateItemCommand(
	actorID, itemID, shopID kernel.UUID,
	name, category, description string,
	price kernel.Price,
) (CreateItemCommand, error) {
	cmd := CreateItemCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setItemID(itemID),
		cmd.setShopID(shopID),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setPrice(price),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// ActorID returns the acting seller's identifier.
func (c CreateItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ItemID returns the identifier assigned to the new item.
func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ShopID returns the identifier of the shop to list the item in.
func (c CreateItemCommand) ShopID() kernel.UUID {
	return c.shopID
}

// Name returns the item's display name.
func (c CreateItemCommand) Name() string {
	return c.name
}

// Category returns the item's category label.
func (c CreateItemCommand) Category() string {
	return c.category
}

// Description returns the optional free-text description.
func (c CreateItemCommand) Description() string {
	return c.description
}

// Price returns the item's price.
func (c CreateItemCommand) Price() kernel.Price {
	return c.price
}

func (c *CreateItemCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *CreateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *CreateItemCommand) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	c.shopID = shopID
	return nil
}

func (c *CreateItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateItemCommand) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrCategoryIsRequired
	}
	c.category = category
	return nil
}

func (c *CreateItemCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
