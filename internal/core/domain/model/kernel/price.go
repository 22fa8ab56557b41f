package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PriceUnit identifies the unit an item is priced by. An item carries exactly
// one priced unit; the old three-optional-fields shape is resolved into a
// single unit at the API boundary by PriceFromTiers.
type PriceUnit int

const (
	// UnitUnknown represents an invalid or undefined price unit.
	// This value (0) helps catch uninitialized PriceUnit values.
	UnitUnknown PriceUnit = iota

	// PerPiece prices the item per individual piece.
	PerPiece

	// Per100Gram prices the item per 100 grams of weight.
	Per100Gram

	// PerUnit prices the item per some other general unit.
	PerUnit
)

func getPriceUnitStrings() map[PriceUnit]string {
	return map[PriceUnit]string{
		UnitUnknown: "unknown",
		PerPiece:    "per_piece",
		Per100Gram:  "per_100gm",
		PerUnit:     "per_unit",
	}
}

func getValidPriceUnitStrings() map[PriceUnit]string {
	//nolint:exhaustive // UnitUnknown is intentionally excluded as it's invalid
	return map[PriceUnit]string{
		PerPiece:   "per_piece",
		Per100Gram: "per_100gm",
		PerUnit:    "per_unit",
	}
}

// String returns the storage name of the price unit.
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (u PriceUnit) String() string {
	if s, ok := getPriceUnitStrings()[u]; ok {
		return s
	}
	return "unknown"
}

// Validate checks if the PriceUnit value is one of the defined units.
func (u PriceUnit) Validate() error {
	if _, ok := getValidPriceUnitStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("price unit is invalid",
			fmt.Errorf("%d is not a valid price unit", u))
	}
	return nil
}

// PriceUnitFromString parses a storage name back into a PriceUnit.
func PriceUnitFromString(s string) (PriceUnit, error) {
	for unit, name := range getValidPriceUnitStrings() {
		if name == s {
			return unit, nil
		}
	}
	return UnitUnknown, errs.NewValueIsInvalidErrorWithCause("price unit is invalid",
		fmt.Errorf("%q is not a valid price unit", s))
}

// Price is a value object pairing a pricing unit with a positive amount.
// It replaces the loose structure of three optional numeric fields: an item is
// priced in exactly one unit, and both cart display and order billing resolve
// the amount through the same accessor, so the two can never disagree.
//
// The zero value is invalid; construct via NewPrice or PriceFromTiers.
type Price struct {
	unit   PriceUnit
	amount float64
}

// NewPrice creates a Price with the given unit and amount.
// The unit must be valid and the amount strictly positive.
func NewPrice(unit PriceUnit, amount float64) (Price, error) {
	if err := unit.Validate(); err != nil {
		return Price{}, err
	}
	if amount <= 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price amount is invalid",
			fmt.Errorf("%v is not greater than 0", amount))
	}
	return Price{unit: unit, amount: amount}, nil
}

// PriceFromTiers resolves the legacy three-optional-fields price shape into a
// single Price. When more than one tier is supplied the precedence is
// perPiece > perUnit > per100gm, matching how carts have always displayed
// prices. Returns an error when no tier is supplied or the winning tier is
// not positive.
func PriceFromTiers(perPiece, perUnit, per100gm *float64) (Price, error) {
	switch {
	case perPiece != nil:
		return NewPrice(PerPiece, *perPiece)
	case perUnit != nil:
		return NewPrice(PerUnit, *perUnit)
	case per100gm != nil:
		return NewPrice(Per100Gram, *per100gm)
	default:
		return Price{}, errs.NewValueIsRequiredError("price")
	}
}

// Unit returns the pricing unit.
func (p Price) Unit() PriceUnit {
	return p.unit
}

// Amount returns the price amount for one pricing unit.
func (p Price) Amount() float64 {
	return p.amount
}

// IsEqual compares two prices by unit and amount.
func (p Price) IsEqual(other Price) bool {
	return p.unit == other.unit && p.amount == other.amount
}

// Validate checks that the price was constructed with a valid unit and a
// positive amount.
func (p Price) Validate() error {
	if err := p.unit.Validate(); err != nil {
		return err
	}
	if p.amount <= 0 {
		return errs.NewValueIsInvalidError("price amount is invalid")
	}
	return nil
}
