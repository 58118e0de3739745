package commands

import (
	"context"
)

// ToggleAvailabilityCommandHandler handles partners going on and off duty.
type ToggleAvailabilityCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewToggleAvailabilityCommandHandler creates a handler for availability toggles.
func NewToggleAvailabilityCommandHandler(uowFactory PartnerUoWFactory) ToggleAvailabilityCommandHandler {
	return ToggleAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle flips the partner's availability. Going available fails with
// partner.ErrPartnerIsInactive for deactivated partners.
func (h ToggleAvailabilityCommandHandler) Handle(ctx context.Context, cmd ToggleAvailabilityCommand) error {
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

	partnerRepo := uow.PartnerRepository()

	p, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if cmd.Available() {
		if err = p.MarkAvailable(); err != nil {
			return err
		}
	} else {
		p.MarkBusy()
	}

	if err = partnerRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
