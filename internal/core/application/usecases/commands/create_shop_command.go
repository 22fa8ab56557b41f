package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateShopCommandIsNotConstructed = errors.New(
		"CreateShopCommand must be created via NewCreateShopCommand constructor",
	)
	ErrShopNameIsRequired     = errors.New("shop name is required")
	ErrCategoryIsRequired     = errors.New("category is required")
	ErrLocationNameIsRequired = errors.New("location name is required")
)

// CreateShopCommand represents a seller opening a new shop.
type CreateShopCommand struct { //nolint:recvcheck //using for validation
	actorID      kernel.UUID
	shopID       kernel.UUID
	name         string
	category     string
	locationName string
	imageURL     string

	guard guard.ConstructorGuard
}

// NewCreateShopCommand creates a command to open a shop owned by the actor.
func NewCreateShopCommand(
	actorID, shopID kernel.UUID,
	name, category, locationName, imageURL string,
) (CreateShopCommand, error) {
	cmd := CreateShopCommand{
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
		return CreateShopCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShopCommand) Validate() error {
	return c.guard.Validate(ErrCreateShopCommandIsNotConstructed)
}

// ActorID returns the acting seller's identifier.
func (c CreateShopCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ShopID returns the identifier assigned to the new shop.
func (c CreateShopCommand) ShopID() kernel.UUID {
	return c.shopID
}

// Name returns the shop's display name.
func (c CreateShopCommand) Name() string {
	return c.name
}

// Category returns the shop's category label.
func (c CreateShopCommand) Category() string {
	return c.category
}

// LocationName returns the town area the shop serves.
func (c CreateShopCommand) LocationName() string {
	return c.locationName
}

// ImageURL returns the optional storefront image reference.
func (c CreateShopCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreateShopCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *CreateShopCommand) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	c.shopID = shopID
	return nil
}

func (c *CreateShopCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrShopNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateShopCommand) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrCategoryIsRequired
	}
	c.category = category
	return nil
}

func (c *CreateShopCommand) setLocationName(locationName string) error {
	if strings.TrimSpace(locationName) == "" {
		return ErrLocationNameIsRequired
	}
	c.locationName = locationName
	return nil
}
