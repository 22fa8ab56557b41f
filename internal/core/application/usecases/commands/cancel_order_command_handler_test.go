package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_ClearsAssignment(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	s := newShopOwnedBy(actorID)
	o := newShippedOrder(t, s.ID(), kernel.NewUUID())
	cmd, err := commands.NewCancelOrderCommand(actorID, o.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, actorID).Return(newSeller(actorID), nil).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	shopRepo := new(MockShopRepository)
	shopRepo.On("Get", mock.Anything, s.ID()).Return(s, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("ShopRepository").Return(shopRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, o.Status())
	assert.Nil(t, o.DeliveryPerson())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	deliveryPersonID := kernel.NewUUID()
	s := newShopOwnedBy(actorID)
	o := newShippedOrder(t, s.ID(), deliveryPersonID)
	require.NoError(t, o.MarkDelivered(deliveryPersonID))
	cmd, err := commands.NewCancelOrderCommand(actorID, o.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, actorID).Return(newSeller(actorID), nil).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	shopRepo := new(MockShopRepository)
	shopRepo.On("Get", mock.Anything, s.ID()).Return(s, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("ShopRepository").Return(shopRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Delivered, o.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
