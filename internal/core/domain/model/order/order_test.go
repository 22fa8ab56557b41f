package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, name string, amount float64, quantity int) order.LineItem {
	t.Helper()
	price, err := kernel.NewPrice(kernel.PerPiece, amount)
	require.NoError(t, err)
	li, err := order.NewLineItem(kernel.NewUUID(), name, price, quantity)
	require.NoError(t, err)
	return li
}

func mustPayment(t *testing.T) order.Payment {
	t.Helper()
	p, err := order.NewPayment("cod")
	require.NoError(t, err)
	return p
}

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewOrderCode(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.LineItem{
			mustLine(t, "Brown Bread", 25, 2),
			mustLine(t, "Milk 1L", 60, 1),
		},
		"12 Hill Road",
		mustPayment(t),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("valid_order", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Placed, o.Status())
		assert.Nil(t, o.DeliveryPerson())
		assert.Equal(t, 1, o.Version())
		assert.Equal(t, order.PaymentPending, o.Payment().Status())
	})

	t.Run("total_is_sum_of_line_subtotals", func(t *testing.T) {
		o := newPlacedOrder(t)

		// 25×2 + 60×1
		assert.InDelta(t, 110, o.TotalBill(), 1e-9)
	})

	t.Run("requires_at_least_one_line", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), order.NewOrderCode(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "12 Hill Road", mustPayment(t),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_delivery_address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), order.NewOrderCode(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{mustLine(t, "Brown Bread", 25, 1)}, "   ", mustPayment(t),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_constructed_code", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), order.OrderCode{}, kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{mustLine(t, "Brown Bread", 25, 1)}, "12 Hill Road", mustPayment(t),
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("placed_to_confirmed", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.Confirm())

		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, 2, o.Version())
	})

	t.Run("confirming_twice_fails", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Confirm())

		require.ErrorIs(t, o.Confirm(), errs.ErrInvalidTransition)
		assert.Equal(t, 2, o.Version())
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("confirmed_to_shipped_sets_delivery_person", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Confirm())
		deliveryPersonID := kernel.NewUUID()

		require.NoError(t, o.Assign(deliveryPersonID))

		assert.Equal(t, order.Shipped, o.Status())
		require.NotNil(t, o.DeliveryPerson())
		assert.True(t, o.DeliveryPerson().IsEqual(deliveryPersonID))
		assert.Equal(t, 3, o.Version())
	})

	t.Run("cannot_assign_placed_order", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.ErrorIs(t, o.Assign(kernel.NewUUID()), errs.ErrInvalidTransition)
		assert.Nil(t, o.DeliveryPerson())
	})

	t.Run("cannot_assign_shipped_order_again", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Confirm())
		first := kernel.NewUUID()
		require.NoError(t, o.Assign(first))

		require.ErrorIs(t, o.Assign(kernel.NewUUID()), errs.ErrInvalidTransition)
		assert.True(t, o.DeliveryPerson().IsEqual(first))
	})

	t.Run("invalid_delivery_person_id", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Confirm())

		require.Error(t, o.Assign(kernel.UUID{}))
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_MarkDelivered(t *testing.T) {
	shipped := func(t *testing.T, deliveryPersonID kernel.UUID) *order.Order {
		t.Helper()
		o := newPlacedOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Assign(deliveryPersonID))
		return o
	}

	t.Run("assigned_person_completes_the_order", func(t *testing.T) {
		deliveryPersonID := kernel.NewUUID()
		o := shipped(t, deliveryPersonID)

		require.NoError(t, o.MarkDelivered(deliveryPersonID))

		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.DeliveryPerson().IsEqual(deliveryPersonID))
		assert.Equal(t, 4, o.Version())
	})

	t.Run("other_delivery_person_is_rejected", func(t *testing.T) {
		o := shipped(t, kernel.NewUUID())

		err := o.MarkDelivered(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("cannot_deliver_before_shipping", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.ErrorIs(t, o.MarkDelivered(kernel.NewUUID()), errs.ErrInvalidTransition)
	})

	t.Run("cannot_deliver_twice", func(t *testing.T) {
		deliveryPersonID := kernel.NewUUID()
		o := shipped(t, deliveryPersonID)
		require.NoError(t, o.MarkDelivered(deliveryPersonID))

		require.ErrorIs(t, o.MarkDelivered(deliveryPersonID), errs.ErrInvalidTransition)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancel_from_placed", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, 2, o.Version())
	})

	t.Run("cancel_from_shipped_clears_assignment", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Assign(kernel.NewUUID()))

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.DeliveryPerson())
	})

	t.Run("cannot_cancel_delivered_order", func(t *testing.T) {
		deliveryPersonID := kernel.NewUUID()
		o := newPlacedOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Assign(deliveryPersonID))
		require.NoError(t, o.MarkDelivered(deliveryPersonID))

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
	})

	t.Run("cannot_cancel_twice", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
	})
}

func TestOrder_SettlePayment(t *testing.T) {
	o := newPlacedOrder(t)

	require.NoError(t, o.SettlePayment(order.PaymentCompleted))
	assert.Equal(t, order.PaymentCompleted, o.Payment().Status())

	require.Error(t, o.SettlePayment(order.PaymentUnknown))
	assert.Equal(t, order.PaymentCompleted, o.Payment().Status())
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	code := order.NewOrderCode()
	consumerID := kernel.NewUUID()
	shopID := kernel.NewUUID()
	lines := []order.LineItem{mustLine(t, "Brown Bread", 25, 2)}

	t.Run("restores_fulfilment_state", func(t *testing.T) {
		deliveryPersonID := kernel.NewUUID()

		o, err := order.RestoreOrder(id, code, consumerID, shopID, &deliveryPersonID,
			lines, "12 Hill Road", mustPayment(t), order.Shipped, 3)

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, 3, o.Version())
		assert.True(t, o.DeliveryPerson().IsEqual(deliveryPersonID))
	})

	t.Run("shipped_without_delivery_person_is_inconsistent", func(t *testing.T) {
		_, err := order.RestoreOrder(id, code, consumerID, shopID, nil,
			lines, "12 Hill Road", mustPayment(t), order.Shipped, 3)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("placed_with_delivery_person_is_inconsistent", func(t *testing.T) {
		deliveryPersonID := kernel.NewUUID()

		_, err := order.RestoreOrder(id, code, consumerID, shopID, &deliveryPersonID,
			lines, "12 Hill Road", mustPayment(t), order.Placed, 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("version_must_be_positive", func(t *testing.T) {
		_, err := order.RestoreOrder(id, code, consumerID, shopID, nil,
			lines, "12 Hill Road", mustPayment(t), order.Placed, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewLineItem(t *testing.T) {
	price, err := kernel.NewPrice(kernel.PerPiece, 25)
	require.NoError(t, err)

	t.Run("subtotal", func(t *testing.T) {
		li, err := order.NewLineItem(kernel.NewUUID(), "Brown Bread", price, 3)
		require.NoError(t, err)
		assert.InDelta(t, 75, li.Subtotal(), 1e-9)
	})

	t.Run("quantity_bounds", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), "Brown Bread", price, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.NewLineItem(kernel.NewUUID(), "Brown Bread", price, 1000)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("required_fields", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), "", price, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewLineItem(kernel.NewUUID(), "Brown Bread", kernel.Price{}, 1)
		require.Error(t, err)
	})
}

func TestPayment(t *testing.T) {
	t.Run("new_payment_starts_pending", func(t *testing.T) {
		p, err := order.NewPayment("cod")
		require.NoError(t, err)
		assert.Equal(t, "cod", p.Method())
		assert.Equal(t, order.PaymentPending, p.Status())
	})

	t.Run("method_is_required", func(t *testing.T) {
		_, err := order.NewPayment("  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("restore_validates_status", func(t *testing.T) {
		_, err := order.RestorePayment("cod", order.PaymentUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		p, err := order.RestorePayment("card", order.PaymentFailed)
		require.NoError(t, err)
		assert.Equal(t, order.PaymentFailed, p.Status())
	})
}
