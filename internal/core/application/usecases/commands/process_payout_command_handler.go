package commands

import (
	"context"
	"time"
)

// ProcessPayoutCommandHandler records payout transfer outcomes.
type ProcessPayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewProcessPayoutCommandHandler creates a handler for payout processing.
func NewProcessPayoutCommandHandler(uowFactory PayoutUoWFactory) ProcessPayoutCommandHandler {
	return ProcessPayoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the payout's status. Any status may be set from any status so
// an administrator can correct a mistaken entry.
func (h ProcessPayoutCommandHandler) Handle(ctx context.Context, cmd ProcessPayoutCommand) error {
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

	payoutRepo := uow.PayoutRepository()

	p, err := payoutRepo.Get(ctx, cmd.PayoutID())
	if err != nil {
		return err
	}

	if err = p.Process(cmd.Status(), cmd.Reference(), time.Now()); err != nil {
		return err
	}

	if err = payoutRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
