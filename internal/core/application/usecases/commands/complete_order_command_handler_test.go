package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCompleteOrderCommand(7)

	existing := restoredOrder(t, 7, order.Created, nil)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, uint64(7)).Return(existing, nil).Once(),
		orderRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Completed, existing.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_CanceledOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCompleteOrderCommand(7)

	existing := restoredOrder(t, 7, order.Canceled, nil)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", mock.Anything, uint64(7)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteStaleOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCompleteStaleOrdersCommand(24 * time.Hour)

	stale := []*order.Order{
		restoredOrder(t, 7, order.Created, nil),
		restoredOrder(t, 8, order.Created, nil),
	}

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return(stale, nil).Once(),
		orderRepo.On("Update", mock.Anything, stale[0]).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, stale[1]).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteStaleOrdersCommandHandler(factory)
	completed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, completed)
	require.Equal(t, order.Completed, stale[0].Status())
	require.Equal(t, order.Completed, stale[1].Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCompleteStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCompleteStaleOrdersCommand(24 * time.Hour)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteStaleOrdersCommandHandler(factory)
	completed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Zero(t, completed)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
