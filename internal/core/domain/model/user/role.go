package user

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role distinguishes the three kinds of account in the marketplace.
// Consumers browse shops, keep a cart, and place orders. Sellers own shops,
// their items, and the orders placed against those shops. Delivery personnel
// fulfil orders assigned to them.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// Consumer browses the catalog, maintains a cart, and places orders.
	Consumer

	// Seller owns shops and items and manages orders placed against its shops.
	Seller

	// DeliveryPerson delivers orders assigned by sellers.
	DeliveryPerson
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		Consumer:       "consumer",
		Seller:         "seller",
		DeliveryPerson: "delivery_person",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Consumer:       "consumer",
		Seller:         "seller",
		DeliveryPerson: "delivery_person",
	}
}

// String returns the storage name of the role.
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// RequiresLocation reports whether accounts of this role must register a
// location name. Sellers and delivery personnel serve a specific town area;
// consumers do not.
func (r Role) RequiresLocation() bool {
	return r == Seller || r == DeliveryPerson
}

// RoleFromString parses a storage name back into a Role.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}
