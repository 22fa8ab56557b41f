package commands

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
	ErrLoginIsRequired    = errors.New("login is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// LoginCommand represents a login attempt with a username or email plus
// password.
type LoginCommand struct { //nolint:recvcheck //using for validation
	login    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a command to authenticate a user.
func NewLoginCommand(login, password string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLogin(login),
		cmd.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Login returns the username or email as typed.
func (c LoginCommand) Login() string {
	return c.login
}

// Password returns the plaintext password as typed.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setLogin(login string) error {
	if strings.TrimSpace(login) == "" {
		return ErrLoginIsRequired
	}
	c.login = strings.TrimSpace(login)
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}
