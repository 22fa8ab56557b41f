package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := map[string]struct {
		status order.Status
		want   string
	}{
		"placed":    {order.Placed, "placed"},
		"confirmed": {order.Confirmed, "confirmed"},
		"shipped":   {order.Shipped, "shipped"},
		"delivered": {order.Delivered, "delivered"},
		"cancelled": {order.Cancelled, "cancelled"},
		"unknown":   {order.Unknown, "unknown"},
		"garbage":   {order.Status(42), "unknown"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Placed, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled} {
		require.NoError(t, s.Validate(), s.String())
	}
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		for _, s := range []order.Status{order.Placed, order.Confirmed, order.Shipped, order.Delivered, order.Cancelled} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unknown_strings_are_rejected", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "Placed", "pending"} {
			_, err := order.StatusFromString(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("confirm", func(t *testing.T) {
		got, err := order.Placed.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, got)

		for _, s := range []order.Status{order.Confirmed, order.Shipped, order.Delivered, order.Cancelled, order.Unknown} {
			_, err := s.Confirm()
			require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})

	t.Run("ship", func(t *testing.T) {
		got, err := order.Confirmed.Ship()
		require.NoError(t, err)
		assert.Equal(t, order.Shipped, got)

		for _, s := range []order.Status{order.Placed, order.Shipped, order.Delivered, order.Cancelled, order.Unknown} {
			_, err := s.Ship()
			require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})

	t.Run("deliver", func(t *testing.T) {
		got, err := order.Shipped.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, got)

		for _, s := range []order.Status{order.Placed, order.Confirmed, order.Delivered, order.Cancelled, order.Unknown} {
			_, err := s.Deliver()
			require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})

	t.Run("cancel", func(t *testing.T) {
		for _, s := range []order.Status{order.Placed, order.Confirmed, order.Shipped} {
			got, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, order.Cancelled, got)
		}

		for _, s := range []order.Status{order.Delivered, order.Cancelled, order.Unknown} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Placed.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}

func TestStatus_ValidateCanHaveDeliveryPerson(t *testing.T) {
	t.Run("assigned_only_while_shipped_or_delivered", func(t *testing.T) {
		require.NoError(t, order.Shipped.ValidateCanHaveDeliveryPerson(true))
		require.NoError(t, order.Delivered.ValidateCanHaveDeliveryPerson(true))

		for _, s := range []order.Status{order.Placed, order.Confirmed, order.Cancelled} {
			require.Error(t, s.ValidateCanHaveDeliveryPerson(true), s.String())
		}
	})

	t.Run("shipped_and_delivered_require_assignment", func(t *testing.T) {
		require.Error(t, order.Shipped.ValidateCanHaveDeliveryPerson(false))
		require.Error(t, order.Delivered.ValidateCanHaveDeliveryPerson(false))

		for _, s := range []order.Status{order.Placed, order.Confirmed, order.Cancelled} {
			require.NoError(t, s.ValidateCanHaveDeliveryPerson(false), s.String())
		}
	})
}
