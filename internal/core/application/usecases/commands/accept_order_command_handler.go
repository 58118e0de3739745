package commands

import (
	"context"
	"time"
)

// AcceptOrderCommandHandler handles a partner claiming an order themselves.
// Two partners racing for the same order go through the same conditional
// store update as admin assignment, so exactly one of them wins.
type AcceptOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for partner self-accept.
func NewAcceptOrderCommandHandler(uowFactory AssignmentUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle claims the order for the partner. The loser of a concurrent claim
// gets order.ErrOrderAlreadyAssigned.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	p, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = assignOrderToPartner(ctx, orderRepo, partnerRepo, o, p, time.Now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
