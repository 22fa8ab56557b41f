package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a user changing their display name.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	realName string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update the actor's profile.
func NewUpdateProfileCommand(actorID kernel.UUID, realName string) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setRealName(realName),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (c UpdateProfileCommand) ActorID() kernel.UUID {
	return c.actorID
}

// RealName returns the new display name.
func (c UpdateProfileCommand) RealName() string {
	return c.realName
}

func (c *UpdateProfileCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateProfileCommand) setRealName(realName string) error {
	if strings.TrimSpace(realName) == "" {
		return ErrRealNameIsRequired
	}
	c.realName = strings.TrimSpace(realName)
	return nil
}
