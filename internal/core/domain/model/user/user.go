package user

import (
	"errors"
	"slices"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is an account in the marketplace: a consumer, a seller, or a delivery
// person. The credential is stored only as a hash; this aggregate never sees
// a plaintext password.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Username, real name, email, and credential hash are required
//   - Role must be one of the defined roles
//   - Sellers and delivery personnel must have a location name
//   - Can only be created through NewUser or RestoreUser
type User struct {
	id           kernel.UUID
	username     string
	realName     string
	email        string
	passwordHash string
	role         Role
	locationName string
	addresses    []string

	isConstructed bool
}

// NewUser creates a new User with validation. Username and email uniqueness
// is a store-level constraint and is not checked here.
func NewUser(
	id kernel.UUID,
	username, realName, email, passwordHash string,
	role Role,
	locationName string,
) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setRealName(realName),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := u.setLocationName(locationName); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence, including saved addresses.
func RestoreUser(
	id kernel.UUID,
	username, realName, email, passwordHash string,
	role Role,
	locationName string,
	addresses []string,
) (*User, error) {
	u, err := NewUser(id, username, realName, email, passwordHash, role, locationName)
	if err != nil {
		return nil, err
	}
	u.addresses = slices.Clone(addresses)
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// RealName returns the user's display name.
func (u *User) RealName() string {
	return u.realName
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// LocationName returns the registered town area. Empty for consumers.
func (u *User) LocationName() string {
	return u.locationName
}

// Addresses returns the saved delivery addresses in insertion order.
func (u *User) Addresses() []string {
	return u.addresses
}

// Rename updates the user's display name.
func (u *User) Rename(realName string) error {
	return u.setRealName(realName)
}

// AddAddress appends a saved delivery address. The address is trimmed and
// must be non-empty.
func (u *User) AddAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	u.addresses = append(u.addresses, address)
	return nil
}

// RemoveAddress deletes a saved address if present. Removing an unknown
// address is not an error.
func (u *User) RemoveAddress(address string) {
	u.addresses = slices.DeleteFunc(u.addresses, func(a string) bool {
		return a == address
	})
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setRealName(realName string) error {
	if realName == "" {
		return errs.NewValueIsRequiredError("realName")
	}
	u.realName = realName
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setLocationName(locationName string) error {
	if u.role.RequiresLocation() && strings.TrimSpace(locationName) == "" {
		return errs.NewValueIsRequiredError("locationName")
	}
	u.locationName = strings.TrimSpace(locationName)
	return nil
}
