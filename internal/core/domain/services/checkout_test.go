package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, shopID kernel.UUID, name string, amount float64) *shop.Item {
	t.Helper()
	price, err := kernel.NewPrice(kernel.PerPiece, amount)
	require.NoError(t, err)
	it, err := shop.NewItem(kernel.NewUUID(), shopID, name, "grocery", "", price)
	require.NoError(t, err)
	return it
}

func TestCheckout_BuildOrder(t *testing.T) {
	checkout := services.NewCheckout()
	consumerID := kernel.NewUUID()
	shopID := kernel.NewUUID()

	t.Run("builds_single_shop_order", func(t *testing.T) {
		bread := newItem(t, shopID, "Brown Bread", 25)
		milk := newItem(t, shopID, "Milk 1L", 60)
		cart, err := user.NewCart(consumerID)
		require.NoError(t, err)
		_, err = cart.Add(bread.ID(), 2)
		require.NoError(t, err)
		_, err = cart.Add(milk.ID(), 1)
		require.NoError(t, err)

		o, err := checkout.BuildOrder(cart,
			map[kernel.UUID]*shop.Item{bread.ID(): bread, milk.ID(): milk},
			"12 Hill Road", "cod")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Placed, o.Status())
		assert.True(t, o.ConsumerID().IsEqual(consumerID))
		assert.True(t, o.ShopID().IsEqual(shopID))
		require.Len(t, o.Lines(), 2)
		assert.InDelta(t, 110, o.TotalBill(), 1e-9)
		assert.Equal(t, "cod", o.Payment().Method())
	})

	t.Run("frozen_lines_ignore_later_catalog_edits", func(t *testing.T) {
		bread := newItem(t, shopID, "Brown Bread", 25)
		cart, err := user.NewCart(consumerID)
		require.NoError(t, err)
		_, err = cart.Add(bread.ID(), 1)
		require.NoError(t, err)

		o, err := checkout.BuildOrder(cart,
			map[kernel.UUID]*shop.Item{bread.ID(): bread}, "12 Hill Road", "cod")
		require.NoError(t, err)

		newPrice, err := kernel.NewPrice(kernel.PerPiece, 99)
		require.NoError(t, err)
		require.NoError(t, bread.Update("Brown Bread", "bakery", "", newPrice, true))

		assert.InDelta(t, 25, o.TotalBill(), 1e-9)
	})

	t.Run("empty_cart_is_rejected", func(t *testing.T) {
		cart, err := user.NewCart(consumerID)
		require.NoError(t, err)

		_, err = checkout.BuildOrder(cart, nil, "12 Hill Road", "cod")

		require.ErrorIs(t, err, services.ErrCartIsEmpty)
	})

	t.Run("mixed_shop_cart_is_rejected", func(t *testing.T) {
		bread := newItem(t, shopID, "Brown Bread", 25)
		soap := newItem(t, kernel.NewUUID(), "Soap Bar", 40)
		cart, err := user.NewCart(consumerID)
		require.NoError(t, err)
		_, err = cart.Add(bread.ID(), 1)
		require.NoError(t, err)
		_, err = cart.Add(soap.ID(), 1)
		require.NoError(t, err)

		_, err = checkout.BuildOrder(cart,
			map[kernel.UUID]*shop.Item{bread.ID(): bread, soap.ID(): soap},
			"12 Hill Road", "cod")

		require.ErrorIs(t, err, services.ErrMixedShopCart)
	})

	t.Run("dangling_item_reference", func(t *testing.T) {
		cart, err := user.NewCart(consumerID)
		require.NoError(t, err)
		_, err = cart.Add(kernel.NewUUID(), 1)
		require.NoError(t, err)

		_, err = checkout.BuildOrder(cart, nil, "12 Hill Road", "cod")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unavailable_item_is_rejected", func(t *testing.T) {
		bread := newItem(t, shopID, "Brown Bread", 25)
		price, err := kernel.NewPrice(kernel.PerPiece, 25)
		require.NoError(t, err)
		require.NoError(t, bread.Update("Brown Bread", "bakery", "", price, false))
		cart, err := user.NewCart(consumerID)
		require.NoError(t, err)
		_, err = cart.Add(bread.ID(), 1)
		require.NoError(t, err)

		_, err = checkout.BuildOrder(cart,
			map[kernel.UUID]*shop.Item{bread.ID(): bread}, "12 Hill Road", "cod")

		require.ErrorIs(t, err, services.ErrItemNotAvailable)
	})

	t.Run("missing_delivery_address", func(t *testing.T) {
		bread := newItem(t, shopID, "Brown Bread", 25)
		cart, err := user.NewCart(consumerID)
		require.NoError(t, err)
		_, err = cart.Add(bread.ID(), 1)
		require.NoError(t, err)

		_, err = checkout.BuildOrder(cart,
			map[kernel.UUID]*shop.Item{bread.ID(): bread}, "", "cod")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing_payment_method", func(t *testing.T) {
		bread := newItem(t, shopID, "Brown Bread", 25)
		cart, err := user.NewCart(consumerID)
		require.NoError(t, err)
		_, err = cart.Add(bread.ID(), 1)
		require.NoError(t, err)

		_, err = checkout.BuildOrder(cart,
			map[kernel.UUID]*shop.Item{bread.ID(): bread}, "12 Hill Road", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
