package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateShopCommandIsNotConstructed = errors.New(
	"UpdateShopCommand must be created via NewUpdateShopCommand constructor",
)

// UpdateShopCommand represents a seller editing one of their shops.
type UpdateShopCommand struct { //nolint:recvcheck //using for validation
	actorID      kernel.UUID
	shopID       kernel.UUID
	name         string
	category     string
	locationName string
	imageURL     string

	guard guard.ConstructorGuard
}

// NewUpdateShopCommand creates a command to edit a shop's attributes.
func NewUpdateShopCommand(
	actorID, shopID kernel.UUID,
	name, category, locationName, imageURL string,
) (UpdateShopCommand, error) {
	cmd := UpdateShopCommand{
		imageURL: imageURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setShopID(shopID),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setLocationName(locationName),
	); err != nil {
		return UpdateShopCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShopCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShopCommandIsNotConstructed)
}

// ActorID returns the acting seller's identifier.
func (c UpdateShopCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ShopID returns the identifier of the shop to edit.
func (c UpdateShopCommand) ShopID() kernel.UUID {
	return c.shopID
}

// Name returns the new display name.
func (c UpdateShopCommand) Name() string {
	return c.name
}

// Category returns the new category label.
func (c UpdateShopCommand) Category() string {
	return c.category
}

// LocationName returns the new town area.
func (c UpdateShopCommand) LocationName() string {
	return c.locationName
}

// ImageURL returns the new storefront image reference.
func (c UpdateShopCommand) ImageURL() string {
	return c.imageURL
}

func (c *UpdateShopCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateShopCommand) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	c.shopID = shopID
	return nil
}

func (c *UpdateShopCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrShopNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdateShopCommand) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrCategoryIsRequired
	}
	c.category = category
	return nil
}

func (c *UpdateShopCommand) setLocationName(locationName string) error {
	if strings.TrimSpace(locationName) == "" {
		return ErrLocationNameIsRequired
	}
	c.locationName = locationName
	return nil
}
