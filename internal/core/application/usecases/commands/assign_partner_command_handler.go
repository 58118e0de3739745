package commands

import (
	"context"
	"log/slog"
	"time"

	"waterdrop/internal/core/ports"
)

// AssignPartnerCommandHandler handles administrator-driven assignment.
type AssignPartnerCommandHandler struct {
	uowFactory AssignmentUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAssignPartnerCommandHandler creates a handler for admin assignment.
func NewAssignPartnerCommandHandler(
	uowFactory AssignmentUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "assign_partner"),
	}
}

// Handle assigns the order to the chosen partner. Fails with
// order.ErrOrderAlreadyAssigned when the order was taken in the meantime.
func (h AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) error {
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

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyPartnerAssigned(ctx, h.notifier, h.logger, o, p)
	return nil
}
