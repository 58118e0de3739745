package services

import (
	"errors"
	"time"

	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/core/domain/model/partner"
)

// ErrPartnerNotFound is returned when no available partner can take the order.
var ErrPartnerNotFound = errors.New("no available delivery partner found")

// OrderDispatcher is the domain service that picks a delivery partner for an
// unassigned order. It prefers the partner with the fewest lifetime
// deliveries so new work spreads across the pool instead of piling on
// whoever signed up first.
type OrderDispatcher struct {
	pricer Pricer
}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{pricer: NewPricer()}
}

// Dispatch selects a partner from the candidates and assigns the order to
// them in memory: the order moves to Accepted with the standard earning and
// the partner is marked busy. The caller persists both aggregates; the race
// between concurrent assignments is resolved by the store's conditional
// update.
func (d OrderDispatcher) Dispatch(
	o *order.Order,
	candidates []*partner.DeliveryPartner,
	at time.Time,
) (*partner.DeliveryPartner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findBestPartner(candidates)
	if err != nil {
		return nil, err
	}

	if err := o.Assign(best.ID(), d.pricer.PartnerEarning(), at); err != nil {
		return nil, err
	}
	best.MarkBusy()

	return best, nil
}

func (d OrderDispatcher) findBestPartner(candidates []*partner.DeliveryPartner) (*partner.DeliveryPartner, error) {
	var best *partner.DeliveryPartner

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		if !candidate.IsActive() || !candidate.IsAvailable() {
			continue
		}
		if best == nil || candidate.TotalDeliveries() < best.TotalDeliveries() {
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrPartnerNotFound
	}
	return best, nil
}
