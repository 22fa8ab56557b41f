package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddToCartCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAddToCartCommand(kernel.NewUUID(), kernel.NewUUID(), 3)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, 3, cmd.Quantity())
	})

	t.Run("quantity_below_one", func(t *testing.T) {
		_, err := commands.NewAddToCartCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("invalid_ids", func(t *testing.T) {
		_, err := commands.NewAddToCartCommand(kernel.UUID{}, kernel.NewUUID(), 1)
		require.Error(t, err)

		_, err = commands.NewAddToCartCommand(kernel.NewUUID(), kernel.UUID{}, 1)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.AddToCartCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAddToCartCommandIsNotConstructed)
	})
}

func TestAddToCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	item := newItemInShop(kernel.NewUUID(), "Brown Bread", 25)
	other := newItemInShop(kernel.NewUUID(), "Milk 1L", 60)
	cmd, err := commands.NewAddToCartCommand(actorID, item.ID(), 3)
	require.NoError(t, err)

	// The cart as stored after the add: the new entry plus one that was
	// already there. The handler reports the total across both.
	cart, err := user.NewCart(actorID)
	require.NoError(t, err)
	_, err = cart.Add(other.ID(), 2)
	require.NoError(t, err)
	_, err = cart.Add(item.ID(), 3)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	itemRepo := new(MockItemRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, actorID).Return(newConsumer(actorID), nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("AddQuantity", mock.Anything, actorID, item.ID(), 3).Return(3, nil).Once(),
		cartRepo.On("Get", mock.Anything, actorID).Return(cart, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToCartCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 5, count)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddToCartCommandHandler_Handle_NonConsumerActor(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	cmd, err := commands.NewAddToCartCommand(actorID, kernel.NewUUID(), 1)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, actorID).Return(newSeller(actorID), nil).Once()

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToCartCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	uow.AssertExpectations(t)
}

func TestAddToCartCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddToCartCommand(actorID, itemID, 1)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, actorID).Return(newConsumer(actorID), nil).Once()
	itemRepo := new(MockItemRepository)
	itemRepo.On("Get", mock.Anything, itemID).
		Return(nil, errs.NewObjectNotFoundError("item", itemID)).Once()

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddToCartCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddToCartCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddToCartCommand(kernel.NewUUID(), kernel.NewUUID(), 1)
	require.NoError(t, err)

	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAddToCartCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
