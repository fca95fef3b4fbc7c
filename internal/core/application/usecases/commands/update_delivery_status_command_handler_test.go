package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateDeliveryStatusCommandHandler_PickUpShipsOrder(t *testing.T) {
	ctx := t.Context()
	c := newCast()
	o := orderFixture(t, c, order.Processing, order.DeliveryAssigned)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	sink := new(MockSink)
	metrics := new(MockMetrics)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(c.courier, o.ID(), "picked_up", "", "Depot 4")
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	metrics.On("StatusChanged", "delivery", "ASSIGNED", "PICKED_UP").Once()
	metrics.On("StatusChanged", "order", "PROCESSING", "SHIPPED").Once()
	sink.On("Notify", ctx, c.customer.ID, notification.DeliveryStatusChanged, mock.Anything).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(orderUoWFactory{uow: uow}, sink, metrics)

	// When
	result, err := handler.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.Equal(t, order.DeliveryPickedUp, result.DeliveryStatus())
	assert.Equal(t, order.Shipped, result.Status())
	assert.Equal(t, "Depot 4", result.LastKnownLocation())
	assert.NotNil(t, result.PickedUpAt())

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	metrics.AssertExpectations(t)
	metrics.AssertNotCalled(t, "OrderDelivered", mock.Anything)
	sink.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_WrongCourier(t *testing.T) {
	ctx := t.Context()
	c := newCast()
	o := orderFixture(t, c, order.Processing, order.DeliveryAssigned)
	stranger := kernel.Actor{ID: kernel.NewUUID(), Role: kernel.RoleDelivery}

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	sink := new(MockSink)
	metrics := new(MockMetrics)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(stranger, o.ID(), "PICKED_UP", "", "")
	require.NoError(t, err)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(orderUoWFactory{uow: uow}, sink, metrics)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.DeliveryAssigned, o.DeliveryStatus())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	metrics.AssertNotCalled(t, "StatusChanged", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_DeliveredCompletesShippedOrder(t *testing.T) {
	ctx := t.Context()
	c := newCast()
	o := orderFixture(t, c, order.Shipped, order.DeliveryOutForDelivery)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	sink := new(MockSink)
	metrics := new(MockMetrics)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(c.courier, o.ID(), "DELIVERED", "left with neighbour", "")
	require.NoError(t, err)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	metrics.On("StatusChanged", "delivery", "OUT_FOR_DELIVERY", "DELIVERED").Once()
	metrics.On("StatusChanged", "order", "SHIPPED", "DELIVERED").Once()
	metrics.On("OrderDelivered", mock.Anything).Once()
	sink.On("Notify", ctx, c.customer.ID, notification.DeliveryStatusChanged, mock.Anything).Once()

	handler := commands.NewUpdateDeliveryStatusCommandHandler(orderUoWFactory{uow: uow}, sink, metrics)

	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, result.Status())
	assert.Equal(t, "left with neighbour", result.DeliveryNotes())
	metrics.AssertExpectations(t)
}

func TestNewUpdateDeliveryStatusCommand_UnknownStatus(t *testing.T) {
	c := newCast()

	_, err := commands.NewUpdateDeliveryStatusCommand(c.courier, kernel.NewUUID(), "LOST", "", "")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
