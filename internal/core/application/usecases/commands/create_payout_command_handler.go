package commands

import (
	"context"
	"errors"
	"time"

	"waterdrop/internal/core/domain/model/payout"
)

// ErrNoDeliveredOrders is returned when the period holds nothing to pay.
var ErrNoDeliveredOrders = errors.New("no delivered orders in the period")

// CreatePayoutCommandHandler builds a payout from the partner's delivered
// orders in the requested period. Orders are not marked as paid out;
// keeping settlement periods non-overlapping is the administrator's job,
// which mirrors how the books were kept before this system.
type CreatePayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewCreatePayoutCommandHandler creates a handler for payout creation.
func NewCreatePayoutCommandHandler(uowFactory PayoutUoWFactory) CreatePayoutCommandHandler {
	return CreatePayoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates a pending payout summing the partner's earnings over the
// period and returns it.
func (h CreatePayoutCommandHandler) Handle(ctx context.Context, cmd CreatePayoutCommand) (*payout.Payout, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	delivered, err := uow.OrderRepository().GetDeliveredByPartnerWithin(ctx, cmd.PartnerID(), cmd.Period())
	if err != nil {
		return nil, err
	}
	if len(delivered) == 0 {
		return nil, ErrNoDeliveredOrders
	}

	entries := make([]payout.Entry, 0, len(delivered))
	for _, o := range delivered {
		entry, err := payout.NewEntry(o.ID(), o.PartnerEarning())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	p, err := payout.NewPayout(cmd.PayoutID(), cmd.PartnerID(), cmd.Period(), entries, cmd.Method(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.PayoutRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
