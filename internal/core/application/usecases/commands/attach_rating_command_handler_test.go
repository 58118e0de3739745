package commands_test

import (
	"testing"

	"waterdrop/internal/core/application/usecases/commands"
	"waterdrop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRatedDeliveredOrder(t *testing.T, value int) *order.Order {
	t.Helper()

	o, _ := newAssignedOrder(t, order.Delivered)
	rating, err := order.NewRating(value, "")
	require.NoError(t, err)
	require.NoError(t, o.AttachRating(rating))
	return o
}

func TestAttachRatingCommandHandler_Handle_RecomputesPartnerScore(t *testing.T) {
	ctx := t.Context()

	o, partnerID := newAssignedOrder(t, order.Delivered)
	p := newActivePartner(t)
	cmd, err := commands.NewAttachRatingCommand(o.ID(), o.CustomerID(), 3, "late but polite")
	require.NoError(t, err)

	// two previously rated deliveries plus this one: (4 + 5 + 3) / 3 = 4.0
	previous := []*order.Order{
		newRatedDeliveredOrder(t, 4),
		newRatedDeliveredOrder(t, 5),
	}

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockAssignmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		orderRepo.On("GetDeliveredRatedByPartner", ctx, partnerID).Return(previous, nil).Once(),
		partnerRepo.On("Get", ctx, partnerID).Return(p, nil).Once(),
		partnerRepo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachRatingCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, o.Rating())
	assert.Equal(t, 3, o.Rating().Value())
	assert.Equal(t, "late but polite", o.Rating().Feedback())
	assert.InDelta(t, 4.0, p.Rating(), 0.001)
	orderRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAttachRatingCommandHandler_Handle_CountsRatedOrderOnceWhenVisible(t *testing.T) {
	ctx := t.Context()

	o, partnerID := newAssignedOrder(t, order.Delivered)
	p := newActivePartner(t)
	cmd, err := commands.NewAttachRatingCommand(o.ID(), o.CustomerID(), 5, "")
	require.NoError(t, err)

	// the repository already sees the rating written earlier in the
	// transaction: (5 + 4) / 2 = 4.5, not (5 + 4 + 5) / 3
	visible := []*order.Order{o, newRatedDeliveredOrder(t, 4)}

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockAssignmentUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", ctx, o).Return(nil).Once()
	orderRepo.On("GetDeliveredRatedByPartner", ctx, partnerID).Return(visible, nil).Once()
	partnerRepo.On("Get", ctx, partnerID).Return(p, nil).Once()
	partnerRepo.On("Update", ctx, p).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachRatingCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.InDelta(t, 4.5, p.Rating(), 0.001)
}

func TestAttachRatingCommandHandler_Handle_NotOrderOwner(t *testing.T) {
	ctx := t.Context()

	o, _ := newAssignedOrder(t, order.Delivered)
	stranger := newStoredOrder(t).CustomerID()
	cmd, err := commands.NewAttachRatingCommand(o.ID(), stranger, 5, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockAssignmentUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachRatingCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNotOrderOwner)
	assert.Nil(t, o.Rating())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAttachRatingCommandHandler_Handle_UndeliveredOrder(t *testing.T) {
	ctx := t.Context()

	o, _ := newAssignedOrder(t, order.OutForDelivery)
	cmd, err := commands.NewAttachRatingCommand(o.ID(), o.CustomerID(), 5, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockAssignmentUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachRatingCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidOrderState)
	orderRepo.AssertNotCalled(t, "Update", ctx, o)
}

func TestNewAttachRatingCommand_RejectsOutOfRangeValue(t *testing.T) {
	o := newStoredOrder(t)

	_, err := commands.NewAttachRatingCommand(o.ID(), o.CustomerID(), 0, "")
	require.Error(t, err)

	_, err = commands.NewAttachRatingCommand(o.ID(), o.CustomerID(), 6, "")
	require.Error(t, err)
}
