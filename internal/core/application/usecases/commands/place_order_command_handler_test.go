package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("required_fields", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "", "cod")
		require.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)

		_, err = commands.NewPlaceOrderCommand(kernel.NewUUID(), "12 Hill Road", "  ")
		require.ErrorIs(t, err, commands.ErrPaymentMethodIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	shopID := kernel.NewUUID()
	bread := newItemInShop(shopID, "Brown Bread", 25)
	milk := newItemInShop(shopID, "Milk 1L", 60)

	cart, err := user.NewCart(actorID)
	require.NoError(t, err)
	_, err = cart.Add(bread.ID(), 2)
	require.NoError(t, err)
	_, err = cart.Add(milk.ID(), 1)
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(actorID, "12 Hill Road", "cod")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	cartRepo := new(MockCartRepository)
	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, actorID).Return(newConsumer(actorID), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", mock.Anything, actorID).Return(cart, nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{bread.ID(), milk.ID()}).
			Return(map[kernel.UUID]*shop.Item{bread.ID(): bread, milk.ID(): milk}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Clear", mock.Anything, actorID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, services.NewCheckout())
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, order.Placed, placed.Status())
	assert.True(t, placed.ShopID().IsEqual(shopID))
	assert.InDelta(t, 110, placed.TotalBill(), 1e-9)
	orderRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	cart, err := user.NewCart(actorID)
	require.NoError(t, err)
	cmd, err := commands.NewPlaceOrderCommand(actorID, "12 Hill Road", "cod")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, actorID).Return(newConsumer(actorID), nil).Once()
	cartRepo := new(MockCartRepository)
	cartRepo.On("Get", mock.Anything, actorID).Return(cart, nil).Once()
	itemRepo := new(MockItemRepository)
	itemRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{}).
		Return(map[kernel.UUID]*shop.Item{}, nil).Once()

	uow := new(MockCheckoutUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, services.NewCheckout())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrCartIsEmpty)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_MixedShopCart(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	bread := newItemInShop(kernel.NewUUID(), "Brown Bread", 25)
	soap := newItemInShop(kernel.NewUUID(), "Soap Bar", 40)

	cart, err := user.NewCart(actorID)
	require.NoError(t, err)
	_, err = cart.Add(bread.ID(), 1)
	require.NoError(t, err)
	_, err = cart.Add(soap.ID(), 1)
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(actorID, "12 Hill Road", "cod")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, actorID).Return(newConsumer(actorID), nil).Once()
	cartRepo := new(MockCartRepository)
	cartRepo.On("Get", mock.Anything, actorID).Return(cart, nil).Once()
	itemRepo := new(MockItemRepository)
	itemRepo.On("GetAllByIDs", mock.Anything, mock.Anything).
		Return(map[kernel.UUID]*shop.Item{bread.ID(): bread, soap.ID(): soap}, nil).Once()

	uow := new(MockCheckoutUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, services.NewCheckout())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrMixedShopCart)
	// The cart survives a failed placement untouched.
	cartRepo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}
