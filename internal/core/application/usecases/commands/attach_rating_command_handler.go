package commands

import (
	"context"
	"errors"

	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/core/domain/services"
)

// ErrNotOrderOwner is returned when a customer rates someone else's order.
var ErrNotOrderOwner = errors.New("order does not belong to this customer")

// AttachRatingCommandHandler records a customer's rating and synchronously
// recomputes the partner's aggregate score from all their rated deliveries.
type AttachRatingCommandHandler struct {
	uowFactory AssignmentUoWFactory
	aggregator services.RatingAggregator
}

// NewAttachRatingCommandHandler creates a handler for order ratings.
func NewAttachRatingCommandHandler(uowFactory AssignmentUoWFactory) AttachRatingCommandHandler {
	return AttachRatingCommandHandler{
		uowFactory: uowFactory,
		aggregator: services.NewRatingAggregator(),
	}
}

// Handle attaches the rating and refreshes the partner score. Recomputing
// the mean over all rated orders instead of folding in a delta makes the
// operation idempotent: re-rating an order just recomputes the same way.
func (h AttachRatingCommandHandler) Handle(ctx context.Context, cmd AttachRatingCommand) error {
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

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return ErrNotOrderOwner
	}

	if err = o.AttachRating(cmd.Rating()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if o.Partner() != nil {
		if err = h.refreshPartnerScore(ctx, uow, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h AttachRatingCommandHandler) refreshPartnerScore(ctx context.Context, uow AssignmentUoW, o *order.Order) error {
	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	partnerID := *o.Partner()
	rated, err := orderRepo.GetDeliveredRatedByPartner(ctx, partnerID)
	if err != nil {
		return err
	}

	values := make([]int, 0, len(rated))
	for _, ratedOrder := range rated {
		if r := ratedOrder.Rating(); r != nil {
			values = append(values, r.Value())
		}
	}
	// the order just rated may not be visible through the repository yet
	if !containsOrder(rated, o) {
		values = append(values, o.Rating().Value())
	}

	p, err := partnerRepo.Get(ctx, partnerID)
	if err != nil {
		return err
	}
	if err = p.SetRating(h.aggregator.Aggregate(values)); err != nil {
		return err
	}
	return partnerRepo.Update(ctx, p)
}

func containsOrder(orders []*order.Order, target *order.Order) bool {
	for _, o := range orders {
		if o.IsEqual(target) {
			return true
		}
	}
	return false
}
