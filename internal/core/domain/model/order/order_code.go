package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"marketplace/internal/pkg/errs"
)

const orderCodeSuffixLength = 5

var orderCodePattern = regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{5}$`)

// OrderCode is the human-facing identifier printed on receipts and used in
// support conversations: "ORD-<placement unix millis>-<5 random base36
// characters, uppercase>". The code is unique per order; the store enforces
// uniqueness and a collision surfaces as a conflict at placement.
type OrderCode struct {
	value string
}

// NewOrderCode generates a code for an order placed now.
func NewOrderCode() OrderCode {
	return newOrderCodeAt(time.Now())
}

func newOrderCodeAt(t time.Time) OrderCode {
	suffix := strconv.FormatInt(rand.Int64N(int64(36*36*36*36*36)), 36)
	suffix = strings.ToUpper(suffix)
	for len(suffix) < orderCodeSuffixLength {
		suffix = "0" + suffix
	}

	return OrderCode{value: fmt.Sprintf("ORD-%d-%s", t.UnixMilli(), suffix)}
}

// OrderCodeFromString parses a stored code, validating its shape.
func OrderCodeFromString(s string) (OrderCode, error) {
	if !orderCodePattern.MatchString(s) {
		return OrderCode{}, errs.NewValueIsInvalidErrorWithCause("orderCode",
			fmt.Errorf("%q does not match ORD-<millis>-<base36>", s))
	}
	return OrderCode{value: s}, nil
}

// String returns the code text. Implements fmt.Stringer.
func (c OrderCode) String() string {
	return c.value
}

// IsEqual compares two codes by value.
func (c OrderCode) IsEqual(other OrderCode) bool {
	return c.value == other.value
}

// Validate ensures the code was created through NewOrderCode or
// OrderCodeFromString.
func (c OrderCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("orderCode must be created via NewOrderCode or OrderCodeFromString")
	}
	return nil
}
