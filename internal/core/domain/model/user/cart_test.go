package user_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart(t *testing.T) *user.Cart {
	t.Helper()
	cart, err := user.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	return cart
}

func TestNewCart(t *testing.T) {
	t.Run("valid_consumer_id", func(t *testing.T) {
		consumerID := kernel.NewUUID()

		cart, err := user.NewCart(consumerID)

		require.NoError(t, err)
		require.NoError(t, cart.Validate())
		assert.True(t, cart.IsEmpty())
		assert.Equal(t, consumerID, cart.ConsumerID())
		assert.Equal(t, 0, cart.TotalQuantity())
	})

	t.Run("invalid_consumer_id", func(t *testing.T) {
		_, err := user.NewCart(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cart user.Cart
		require.ErrorIs(t, cart.Validate(), user.ErrCartIsNotConstructed)
	})
}

func TestCart_Add(t *testing.T) {
	t.Run("new_item_is_appended", func(t *testing.T) {
		cart := newCart(t)
		itemID := kernel.NewUUID()

		total, err := cart.Add(itemID, 3)

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, cart.Items(), 1)
		assert.Equal(t, itemID, cart.Items()[0].ItemID())
	})

	t.Run("existing_item_adds_quantities", func(t *testing.T) {
		cart := newCart(t)
		itemID := kernel.NewUUID()

		_, err := cart.Add(itemID, 3)
		require.NoError(t, err)
		total, err := cart.Add(itemID, 4)
		require.NoError(t, err)

		assert.Equal(t, 7, total)
		require.Len(t, cart.Items(), 1)
	})

	t.Run("repeated_adds_clamp_at_999", func(t *testing.T) {
		cart := newCart(t)
		itemID := kernel.NewUUID()

		_, err := cart.Add(itemID, 500)
		require.NoError(t, err)
		total, err := cart.Add(itemID, 500)
		require.NoError(t, err)

		assert.Equal(t, 999, total)
		assert.Equal(t, 999, cart.Items()[0].Quantity())
	})

	t.Run("single_add_above_ceiling_is_clamped", func(t *testing.T) {
		cart := newCart(t)

		total, err := cart.Add(kernel.NewUUID(), 5000)

		require.NoError(t, err)
		assert.Equal(t, 999, total)
	})

	t.Run("quantity_below_one_is_rejected", func(t *testing.T) {
		cart := newCart(t)

		_, err := cart.Add(kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = cart.Add(kernel.NewUUID(), -5)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("clamping_is_per_item", func(t *testing.T) {
		cart := newCart(t)

		_, err := cart.Add(kernel.NewUUID(), 998)
		require.NoError(t, err)
		total, err := cart.Add(kernel.NewUUID(), 998)
		require.NoError(t, err)

		assert.Equal(t, 1996, total)
	})
}

func TestAggregateMergeEntries(t *testing.T) {
	itemA := kernel.NewUUID()
	itemB := kernel.NewUUID()

	t.Run("repeats_are_summed_and_negatives_dropped", func(t *testing.T) {
		entries := []user.MergeEntry{
			{ItemID: itemA, Quantity: 3},
			{ItemID: itemA, Quantity: 2},
			{ItemID: itemB, Quantity: -5},
		}

		aggregated := user.AggregateMergeEntries(entries)

		require.Len(t, aggregated, 1)
		assert.Equal(t, itemA, aggregated[0].ItemID)
		assert.Equal(t, 5, aggregated[0].Quantity)
	})

	t.Run("negative_contribution_counts_as_zero_not_subtraction", func(t *testing.T) {
		entries := []user.MergeEntry{
			{ItemID: itemA, Quantity: -100},
			{ItemID: itemA, Quantity: 4},
		}

		aggregated := user.AggregateMergeEntries(entries)

		require.Len(t, aggregated, 1)
		assert.Equal(t, 4, aggregated[0].Quantity)
	})

	t.Run("unconstructed_item_ids_are_skipped", func(t *testing.T) {
		entries := []user.MergeEntry{
			{ItemID: kernel.UUID{}, Quantity: 3},
			{ItemID: itemB, Quantity: 2},
		}

		aggregated := user.AggregateMergeEntries(entries)

		require.Len(t, aggregated, 1)
		assert.Equal(t, itemB, aggregated[0].ItemID)
	})

	t.Run("first_seen_order_is_preserved", func(t *testing.T) {
		entries := []user.MergeEntry{
			{ItemID: itemB, Quantity: 1},
			{ItemID: itemA, Quantity: 1},
			{ItemID: itemB, Quantity: 1},
		}

		aggregated := user.AggregateMergeEntries(entries)

		require.Len(t, aggregated, 2)
		assert.Equal(t, itemB, aggregated[0].ItemID)
		assert.Equal(t, itemA, aggregated[1].ItemID)
	})
}

func TestCart_Merge(t *testing.T) {
	itemA := kernel.NewUUID()
	itemB := kernel.NewUUID()

	t.Run("merge_into_empty_cart", func(t *testing.T) {
		cart := newCart(t)

		total, err := cart.Merge([]user.MergeEntry{
			{ItemID: itemA, Quantity: 3},
			{ItemID: itemA, Quantity: 2},
			{ItemID: itemB, Quantity: -5},
		})

		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, cart.Items(), 1)
		assert.Equal(t, itemA, cart.Items()[0].ItemID())
		assert.Equal(t, 5, cart.Items()[0].Quantity())
	})

	t.Run("merge_clamps_against_existing_quantity", func(t *testing.T) {
		cart := newCart(t)
		_, err := cart.Add(itemA, 900)
		require.NoError(t, err)

		total, err := cart.Merge([]user.MergeEntry{{ItemID: itemA, Quantity: 500}})

		require.NoError(t, err)
		assert.Equal(t, 999, total)
	})

	t.Run("empty_entries_are_rejected", func(t *testing.T) {
		cart := newCart(t)

		_, err := cart.Merge(nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("all_zero_merge_is_a_noop", func(t *testing.T) {
		cart := newCart(t)
		_, err := cart.Add(itemA, 2)
		require.NoError(t, err)

		total, err := cart.Merge([]user.MergeEntry{{ItemID: itemB, Quantity: 0}})

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, cart.Items(), 1)
	})
}

func TestCart_Remove(t *testing.T) {
	t.Run("removes_matching_entry", func(t *testing.T) {
		cart := newCart(t)
		itemA := kernel.NewUUID()
		itemB := kernel.NewUUID()
		_, err := cart.Add(itemA, 2)
		require.NoError(t, err)
		_, err = cart.Add(itemB, 1)
		require.NoError(t, err)

		require.NoError(t, cart.Remove(itemA))

		require.Len(t, cart.Items(), 1)
		assert.Equal(t, itemB, cart.Items()[0].ItemID())
	})

	t.Run("absent_item_is_not_an_error", func(t *testing.T) {
		cart := newCart(t)

		require.NoError(t, cart.Remove(kernel.NewUUID()))
	})
}

func TestCart_Clear(t *testing.T) {
	cart := newCart(t)
	_, err := cart.Add(kernel.NewUUID(), 5)
	require.NoError(t, err)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalQuantity())
}

func TestRestoreCart(t *testing.T) {
	consumerID := kernel.NewUUID()
	itemA := kernel.NewUUID()

	t.Run("restores_entries", func(t *testing.T) {
		entry, err := user.NewCartItem(itemA, 7)
		require.NoError(t, err)

		cart, err := user.RestoreCart(consumerID, []user.CartItem{entry})

		require.NoError(t, err)
		assert.Equal(t, 7, cart.TotalQuantity())
	})

	t.Run("duplicate_items_are_rejected", func(t *testing.T) {
		entry, err := user.NewCartItem(itemA, 1)
		require.NoError(t, err)

		_, err = user.RestoreCart(consumerID, []user.CartItem{entry, entry})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewCartItem(t *testing.T) {
	t.Run("quantity_bounds", func(t *testing.T) {
		_, err := user.NewCartItem(kernel.NewUUID(), 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = user.NewCartItem(kernel.NewUUID(), 1000)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = user.NewCartItem(kernel.NewUUID(), 999)
		require.NoError(t, err)
	})
}
