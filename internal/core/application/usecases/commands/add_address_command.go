package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddAddressCommandIsNotConstructed = errors.New(
		"AddAddressCommand must be created via NewAddAddressCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// AddAddressCommand represents a user saving a delivery address to their
// profile.
type AddAddressCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	address string

	guard guard.ConstructorGuard
}

// NewAddAddressCommand creates a command to save an address.
func NewAddAddressCommand(actorID kernel.UUID, address string) (AddAddressCommand, error) {
	cmd := AddAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setAddress(address),
	); err != nil {
		return AddAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddAddressCommandIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (c AddAddressCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Address returns the address text to save.
func (c AddAddressCommand) Address() string {
	return c.address
}

func (c *AddAddressCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *AddAddressCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}
