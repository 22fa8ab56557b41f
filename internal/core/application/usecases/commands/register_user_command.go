package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

// MinPasswordLength is the shortest accepted registration password.
const MinPasswordLength = 6

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrRealNameIsRequired = errors.New("real name is required")
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsTooShort = errors.New("password is too short")
)

// RegisterUserCommand represents a new account registration. The password
// travels in plaintext only as far as the handler, which stores a hash.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	username     string
	realName     string
	email        string
	password     string
	role         user.Role
	locationName string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register an account.
// Location is validated per role by the User aggregate when the handler
// constructs it.
func NewRegisterUserCommand(
	username, realName, email, password string,
	role user.Role,
	locationName string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		locationName: locationName,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setRealName(realName),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Username returns the requested login name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// RealName returns the account's display name.
func (c RegisterUserCommand) RealName() string {
	return c.realName
}

// Email returns the account's email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext registration password.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested account role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

// LocationName returns the registered town area, empty for consumers.
func (c RegisterUserCommand) LocationName() string {
	return c.locationName
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameIsRequired
	}
	c.username = strings.TrimSpace(username)
	return nil
}

func (c *RegisterUserCommand) setRealName(realName string) error {
	if strings.TrimSpace(realName) == "" {
		return ErrRealNameIsRequired
	}
	c.realName = strings.TrimSpace(realName)
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}
	c.email = strings.TrimSpace(email)
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordIsTooShort
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
