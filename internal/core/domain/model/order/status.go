package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfilment workflow.
//
// State transitions:
//
//	Placed ──> Confirmed ──> Shipped ──> Delivered
//	   │           │            │
//	   └───────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when a consumer places an order.
	// Orders in this status are waiting for the seller to confirm.
	Placed

	// Confirmed indicates the seller has accepted the order.
	// Orders in this status are waiting to be handed to a delivery person.
	Confirmed

	// Shipped indicates the order is out for delivery with an assigned
	// delivery person.
	Shipped

	// Delivered indicates the assigned delivery person completed the order.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Placed:    "placed",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "placed",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the storage name of the status.
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a storage name back into a Status.
func StatusFromString(str string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", str))
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateCanHaveDeliveryPerson validates the consistency between order
// status and delivery-person assignment.
//
// Business rules:
//   - Placed, Confirmed, and Cancelled orders must not have a delivery person
//   - Shipped and Delivered orders must have a delivery person
func (s Status) ValidateCanHaveDeliveryPerson(assigned bool) error {
	if assigned && s != Shipped && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a delivery person", s.String()),
		)
	}

	if !assigned && (s == Shipped || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no delivery person", s.String()),
		)
	}

	return nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Placed -> Confirmed (seller accepts the order)
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Confirm() (Status, error) {
	if s != Placed {
		return 0, errs.NewInvalidTransitionError(s.String(), Confirmed.String())
	}
	return Confirmed, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Confirmed -> Shipped (seller hands the order to a delivery person)
//
// Returns:
//   - (Shipped, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Ship() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidTransitionError(s.String(), Shipped.String())
	}
	return Shipped, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered (delivery person completes the order)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidTransitionError(s.String(), Delivered.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Placed -> Cancelled
//   - Confirmed -> Cancelled
//   - Shipped -> Cancelled
//
// Delivered orders cannot be cancelled, and cancelling twice is an error.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if s != Placed && s != Confirmed && s != Shipped {
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}
