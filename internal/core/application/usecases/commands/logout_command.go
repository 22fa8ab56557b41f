package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand represents ending a login session. Logging out an already
// removed session succeeds quietly.
type LogoutCommand struct { //nolint:recvcheck //using for validation
	token kernel.UUID

	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a command to end the session with the given token.
func NewLogoutCommand(token kernel.UUID) (LogoutCommand, error) {
	cmd := LogoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setToken(token); err != nil {
		return LogoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

// Token returns the session token to invalidate.
func (c LogoutCommand) Token() kernel.UUID {
	return c.token
}

func (c *LogoutCommand) setToken(token kernel.UUID) error {
	if err := token.Validate(); err != nil {
		return err
	}
	c.token = token
	return nil
}
