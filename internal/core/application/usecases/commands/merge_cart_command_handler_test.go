package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewMergeCartCommand(t *testing.T) {
	t.Run("empty_entries_are_rejected", func(t *testing.T) {
		_, err := commands.NewMergeCartCommand(kernel.NewUUID(), nil)
		require.ErrorIs(t, err, commands.ErrMergeEntriesAreRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.MergeCartCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrMergeCartCommandIsNotConstructed)
	})
}

func TestMergeCartCommandHandler_Handle_AggregatesBeforeApplying(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	shopID := kernel.NewUUID()
	itemA := newItemInShop(shopID, "Brown Bread", 25)
	itemB := newItemInShop(shopID, "Milk 1L", 60)

	// A repeats and B is negative: only A with the summed quantity survives.
	cmd, err := commands.NewMergeCartCommand(actorID, []commands.MergeCartEntry{
		{ItemID: itemA.ID(), Quantity: 3},
		{ItemID: itemA.ID(), Quantity: 2},
		{ItemID: itemB.ID(), Quantity: -5},
	})
	require.NoError(t, err)

	cart, err := user.NewCart(actorID)
	require.NoError(t, err)
	_, err = cart.Add(itemA.ID(), 5)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	itemRepo := new(MockItemRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, actorID).Return(newConsumer(actorID), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{itemA.ID()}).
			Return(map[kernel.UUID]*shop.Item{itemA.ID(): itemA}, nil).Once(),
		cartRepo.On("AddQuantity", mock.Anything, actorID, itemA.ID(), 5).Return(5, nil).Once(),
		cartRepo.On("Get", mock.Anything, actorID).Return(cart, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMergeCartCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 5, count)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMergeCartCommandHandler_Handle_UnknownItemsAreDropped(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	known := newItemInShop(kernel.NewUUID(), "Brown Bread", 25)
	unknownID := kernel.NewUUID()

	cmd, err := commands.NewMergeCartCommand(actorID, []commands.MergeCartEntry{
		{ItemID: known.ID(), Quantity: 2},
		{ItemID: unknownID, Quantity: 4},
	})
	require.NoError(t, err)

	cart, err := user.NewCart(actorID)
	require.NoError(t, err)
	_, err = cart.Add(known.ID(), 2)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, actorID).Return(newConsumer(actorID), nil).Once()
	itemRepo := new(MockItemRepository)
	itemRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{known.ID(), unknownID}).
		Return(map[kernel.UUID]*shop.Item{known.ID(): known}, nil).Once()
	cartRepo := new(MockCartRepository)
	cartRepo.On("AddQuantity", mock.Anything, actorID, known.ID(), 2).Return(2, nil).Once()
	cartRepo.On("Get", mock.Anything, actorID).Return(cart, nil).Once()

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ItemRepository").Return(itemRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMergeCartCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	cartRepo.AssertExpectations(t)
}

func TestMergeCartCommandHandler_Handle_AllZeroIsNoop(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	cmd, err := commands.NewMergeCartCommand(actorID, []commands.MergeCartEntry{
		{ItemID: kernel.NewUUID(), Quantity: 0},
		{ItemID: kernel.NewUUID(), Quantity: -1},
	})
	require.NoError(t, err)

	// Nothing survives aggregation: the stored cart is left alone and its
	// current total comes back.
	existing := newItemInShop(kernel.NewUUID(), "Brown Bread", 25)
	cart, err := user.NewCart(actorID)
	require.NoError(t, err)
	_, err = cart.Add(existing.ID(), 7)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, actorID).Return(newConsumer(actorID), nil).Once()
	cartRepo := new(MockCartRepository)
	cartRepo.On("Get", mock.Anything, actorID).Return(cart, nil).Once()

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMergeCartCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 7, count)
	cartRepo.AssertNotCalled(t, "AddQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
