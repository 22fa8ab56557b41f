package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveAddressCommandIsNotConstructed = errors.New(
	"RemoveAddressCommand must be created via NewRemoveAddressCommand constructor",
)

// RemoveAddressCommand represents a user deleting a saved delivery address.
// Removing an address that is not saved succeeds quietly.
type RemoveAddressCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	address string

	guard guard.ConstructorGuard
}

// NewRemoveAddressCommand creates a command to delete a saved address.
func NewRemoveAddressCommand(actorID kernel.UUID, address string) (RemoveAddressCommand, error) {
	cmd := RemoveAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setAddress(address),
	); err != nil {
		return RemoveAddressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAddressCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAddressCommandIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (c RemoveAddressCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Address returns the address text to delete.
func (c RemoveAddressCommand) Address() string {
	return c.address
}

func (c *RemoveAddressCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *RemoveAddressCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}
