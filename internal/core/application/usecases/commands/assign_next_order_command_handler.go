package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"waterdrop/internal/core/domain/services"
	"waterdrop/internal/core/ports"
	"waterdrop/internal/pkg/errs"
)

var (
	// ErrNoPendingOrders is returned when there is nothing to assign.
	ErrNoPendingOrders = errors.New("no pending orders found")
	// ErrNoAvailablePartners is returned when every partner is busy or inactive.
	ErrNoAvailablePartners = errors.New("no available delivery partners found")
)

// AssignNextOrderCommandHandler runs one automatic assignment pass, matching
// the oldest waiting order with a partner through the OrderDispatcher.
type AssignNextOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAssignNextOrderCommandHandler creates a handler for auto-assignment.
func NewAssignNextOrderCommandHandler(
	uowFactory AssignmentUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignNextOrderCommandHandler {
	return AssignNextOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "assign_next_order"),
	}
}

// Handle assigns the oldest unassigned order to the best available partner.
// Returns ErrNoPendingOrders or ErrNoAvailablePartners when there is nothing
// to do; callers treat those as idle, not failure.
func (h AssignNextOrderCommandHandler) Handle(ctx context.Context, cmd AssignNextOrderCommand) error {
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

	o, err := orderRepo.GetFirstUnassigned(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrders
	}
	if err != nil {
		return err
	}

	partners, err := partnerRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(partners) == 0 {
		return ErrNoAvailablePartners
	}

	assigned, err := services.NewOrderDispatcher().Dispatch(o, partners, time.Now())
	if errors.Is(err, services.ErrPartnerNotFound) {
		return ErrNoAvailablePartners
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Assign(ctx, o); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, assigned); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyPartnerAssigned(ctx, h.notifier, h.logger, o, assigned)
	return nil
}
