package order

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// PaymentStatus represents the settlement state of an order's payment.
// Orders are placed with a pending payment; settlement happens out of band
// and is recorded against the order afterwards.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status at placement.
	PaymentPending

	// PaymentCompleted indicates the payment settled successfully.
	PaymentCompleted

	// PaymentFailed indicates the payment did not settle.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "unknown",
		PaymentPending:   "pending",
		PaymentCompleted: "completed",
		PaymentFailed:    "failed",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:   "pending",
		PaymentCompleted: "completed",
		PaymentFailed:    "failed",
	}
}

// String returns the storage name of the payment status.
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the PaymentStatus value is one of the defined states.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// PaymentStatusFromString parses a storage name back into a PaymentStatus.
func PaymentStatusFromString(str string) (PaymentStatus, error) {
	for status, name := range getValidPaymentStatusStrings() {
		if name == str {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", str))
}

// PaymentMethodCashOnDelivery is settled in person at handover, so completing
// the delivery also completes the payment.
const PaymentMethodCashOnDelivery = "cod"

// Payment records how an order is paid: the method the consumer chose at
// checkout and the settlement status.
type Payment struct {
	method string
	status PaymentStatus
}

// NewPayment creates the payment record for a freshly placed order.
// The status starts as pending.
func NewPayment(method string) (Payment, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return Payment{}, errs.NewValueIsRequiredError("paymentMethod")
	}
	return Payment{method: method, status: PaymentPending}, nil
}

// RestorePayment reconstructs a payment record from persistence.
func RestorePayment(method string, status PaymentStatus) (Payment, error) {
	p, err := NewPayment(method)
	if err != nil {
		return Payment{}, err
	}
	if err := status.Validate(); err != nil {
		return Payment{}, err
	}
	p.status = status
	return p, nil
}

// Method returns the payment method chosen at checkout.
func (p Payment) Method() string {
	return p.method
}

// Status returns the settlement status.
func (p Payment) Status() PaymentStatus {
	return p.status
}

// Validate ensures the payment was created through NewPayment or
// RestorePayment.
func (p Payment) Validate() error {
	if p.method == "" || p.status == PaymentUnknown {
		return errs.NewValueIsRequiredError("payment must be created via NewPayment or RestorePayment")
	}
	return nil
}
