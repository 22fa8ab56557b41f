package shop

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrShopIsNotConstructed is returned when a Shop instance was not created
// through the NewShop or RestoreShop factory methods.
var ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop or RestoreShop")

// Shop is a seller's storefront in one town area. Items are listed against a
// shop and orders are placed against exactly one shop.
//
// Shop follows these invariants:
//   - Must have a valid unique identifier and a valid owner identifier
//   - Name, category, and location name are required
//   - Can only be created through NewShop or RestoreShop
type Shop struct {
	id           kernel.UUID
	ownerID      kernel.UUID
	name         string
	category     string
	locationName string
	imageURL     string

	isConstructed bool
}

// NewShop creates a new Shop with validation.
func NewShop(
	id, ownerID kernel.UUID,
	name, category, locationName, imageURL string,
) (*Shop, error) {
	s := &Shop{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setName(name),
		s.setCategory(category),
		s.setLocationName(locationName),
	); err != nil {
		return nil, err
	}
	s.imageURL = imageURL

	return s, nil
}

// RestoreShop reconstructs a Shop from persistence.
func RestoreShop(
	id, ownerID kernel.UUID,
	name, category, locationName, imageURL string,
) (*Shop, error) {
	return NewShop(id, ownerID, name, category, locationName, imageURL)
}

// Validate ensures the Shop instance was properly constructed.
func (s *Shop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShopIsNotConstructed
	}
	return nil
}

// IsEqual compares two shops by their unique identifiers.
func (s *Shop) IsEqual(other *Shop) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shop's unique identifier.
func (s *Shop) ID() kernel.UUID {
	return s.id
}

// OwnerID returns the identifier of the seller owning the shop.
func (s *Shop) OwnerID() kernel.UUID {
	return s.ownerID
}

// Name returns the shop's display name.
func (s *Shop) Name() string {
	return s.name
}

// Category returns the shop's category label.
func (s *Shop) Category() string {
	return s.category
}

// LocationName returns the town area the shop serves.
func (s *Shop) LocationName() string {
	return s.locationName
}

// ImageURL returns the optional storefront image reference.
func (s *Shop) ImageURL() string {
	return s.imageURL
}

// IsOwnedBy reports whether the given user owns this shop. Every seller-facing
// operation re-checks ownership through this method at call time.
func (s *Shop) IsOwnedBy(userID kernel.UUID) bool {
	return s.ownerID.IsEqual(userID)
}

// Update replaces the shop's editable attributes. The owner and the identity
// never change.
func (s *Shop) Update(name, category, locationName, imageURL string) error {
	if err := errors.Join(
		s.setName(name),
		s.setCategory(category),
		s.setLocationName(locationName),
	); err != nil {
		return err
	}
	s.imageURL = imageURL
	return nil
}

func (s *Shop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shop) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	s.ownerID = ownerID
	return nil
}

func (s *Shop) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = strings.TrimSpace(name)
	return nil
}

func (s *Shop) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errs.NewValueIsRequiredError("category")
	}
	s.category = strings.TrimSpace(category)
	return nil
}

func (s *Shop) setLocationName(locationName string) error {
	if strings.TrimSpace(locationName) == "" {
		return errs.NewValueIsRequiredError("locationName")
	}
	s.locationName = strings.TrimSpace(locationName)
	return nil
}
