package order

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// MaxLineQuantity is the ceiling on a single order line's quantity.
// It mirrors the cart's per-item ceiling, so a valid cart always converts
// into valid order lines.
const MaxLineQuantity = 999

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order engine. It is an immutable snapshot
// of a cart at placement time plus a mutable fulfilment status; the only
// fields that ever change after placement are the status, the delivery-person
// assignment, the payment settlement, and the optimistic-concurrency version.
//
// Order follows these invariants:
//   - Must have a valid identifier, order code, consumer, and shop
//   - All lines belong to the one shop the order was placed against
//   - Must have at least one line; the total equals the sum of line subtotals
//   - Status transitions follow the placed→confirmed→shipped→delivered machine,
//     with cancellation allowed from any non-delivered, non-cancelled state
//   - A delivery person is set exactly while the status is shipped or delivered
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id               kernel.UUID
	code             OrderCode
	consumerID       kernel.UUID
	shopID           kernel.UUID
	deliveryPersonID *kernel.UUID
	lines            []LineItem
	totalBill        float64
	deliveryAddress  string
	payment          Payment
	status           Status

	// version supports compare-and-swap writes of status transitions.
	version int

	isConstructed bool
}

// NewOrder creates a freshly placed Order from frozen cart lines.
// The status starts as Placed with no delivery person, the total is derived
// from the lines, and the version starts at 1.
func NewOrder(
	id kernel.UUID,
	code OrderCode,
	consumerID, shopID kernel.UUID,
	lines []LineItem,
	deliveryAddress string,
	payment Payment,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setConsumerID(consumerID),
		o.setShopID(shopID),
		o.setLines(lines),
		o.setDeliveryAddress(deliveryAddress),
		o.setPayment(payment),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its
// fulfilment state and version. The stored status and delivery-person
// assignment must be mutually consistent.
func RestoreOrder(
	id kernel.UUID,
	code OrderCode,
	consumerID, shopID kernel.UUID,
	deliveryPersonID *kernel.UUID,
	lines []LineItem,
	deliveryAddress string,
	payment Payment,
	status Status,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, code, consumerID, shopID, lines, deliveryAddress, payment)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveDeliveryPerson(deliveryPersonID != nil); err != nil {
		return nil, err
	}
	if deliveryPersonID != nil {
		if err := deliveryPersonID.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	o.status = status
	o.deliveryPersonID = deliveryPersonID
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-facing order code.
func (o *Order) Code() OrderCode {
	return o.code
}

// ConsumerID returns the identifier of the consumer who placed the order.
func (o *Order) ConsumerID() kernel.UUID {
	return o.consumerID
}

// ShopID returns the identifier of the one shop the order was placed against.
func (o *Order) ShopID() kernel.UUID {
	return o.shopID
}

// DeliveryPerson returns the assigned delivery person's ID.
// Returns nil unless the order is shipped or delivered.
func (o *Order) DeliveryPerson() *kernel.UUID {
	return o.deliveryPersonID
}

// Lines returns the frozen order lines.
func (o *Order) Lines() []LineItem {
	return o.lines
}

// TotalBill returns the order total, the sum of line subtotals.
func (o *Order) TotalBill() float64 {
	return o.totalBill
}

// DeliveryAddress returns the free-text address chosen at checkout.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Payment returns the order's payment record.
func (o *Order) Payment() Payment {
	return o.payment
}

// Status returns the current fulfilment status.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic-concurrency version. It increases by one on
// every successful transition; persistence writes transitions conditionally
// on the version they loaded.
func (o *Order) Version() int {
	return o.version
}

// Confirm marks the order as accepted by the selling shop's owner.
//
// The order must be in Placed status. Ownership of the shop is the caller's
// responsibility to verify against the current catalog before invoking this.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.version++
	return nil
}

// Assign hands the order to a delivery person and moves it to Shipped.
//
// This method enforces the following business rules:
//   - The delivery person's ID must be valid
//   - The order must be in Confirmed status
//
// The assignment and the status change are one operation; there is no state
// in which a shipped order lacks a delivery person.
func (o *Order) Assign(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPersonID = &deliveryPersonID
	o.version++
	return nil
}

// MarkDelivered completes the order on behalf of the acting delivery person.
//
// This method enforces the following business rules:
//   - The order must be in Shipped status
//   - The actor must be the assigned delivery person
func (o *Order) MarkDelivered(by kernel.UUID) error {
	if err := by.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if o.deliveryPersonID == nil || !o.deliveryPersonID.IsEqual(by) {
		return errs.NewNotAuthorizedError(by.String(), "order "+o.id.String())
	}

	o.status = newStatus
	o.version++
	return nil
}

// Cancel aborts the order. Allowed from Placed, Confirmed, and Shipped;
// cancelling an order clears any delivery-person assignment.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPersonID = nil
	o.version++
	return nil
}

// SettlePayment records the settlement outcome of the order's payment.
func (o *Order) SettlePayment(status PaymentStatus) error {
	p, err := RestorePayment(o.payment.method, status)
	if err != nil {
		return err
	}
	o.payment = p
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code OrderCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setConsumerID(consumerID kernel.UUID) error {
	if err := consumerID.Validate(); err != nil {
		return err
	}
	o.consumerID = consumerID
	return nil
}

func (o *Order) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return err
	}
	o.shopID = shopID
	return nil
}

func (o *Order) setLines(lines []LineItem) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	total := 0.0
	for _, li := range lines {
		total += li.Subtotal()
	}

	o.lines = lines
	o.totalBill = total
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if strings.TrimSpace(deliveryAddress) == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = strings.TrimSpace(deliveryAddress)
	return nil
}

func (o *Order) setPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}
