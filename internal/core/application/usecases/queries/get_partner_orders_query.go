package queries

import (
	"errors"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/pkg/guard"
)

var ErrGetPartnerOrdersQueryIsNotConstructed = errors.New(
	"GetPartnerOrdersQuery must be created via NewGetPartnerOrdersQuery constructor",
)

// GetPartnerOrdersQuery retrieves the orders assigned to one delivery
// partner, optionally narrowed to a single status.
type GetPartnerOrdersQuery struct {
	partnerID kernel.UUID
	status    *order.Status

	guard guard.ConstructorGuard
}

// NewGetPartnerOrdersQuery creates a query for a partner's assigned orders.
// A nil status returns every order regardless of state.
func NewGetPartnerOrdersQuery(partnerID kernel.UUID, status *order.Status) (GetPartnerOrdersQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetPartnerOrdersQuery{}, err
		}
	}

	return GetPartnerOrdersQuery{
		partnerID: partnerID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerOrdersQueryIsNotConstructed)
}

// PartnerID returns the partner whose orders are requested.
func (q GetPartnerOrdersQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

// Status returns the status filter, nil for all.
func (q GetPartnerOrdersQuery) Status() *order.Status {
	return q.status
}

// GetPartnerOrdersQueryResponse is one order assigned to the partner.
type GetPartnerOrdersQueryResponse struct {
	ID             kernel.UUID
	Number         string
	Address        string
	Status         string
	Total          int
	PartnerEarning int
	PlacedAt       time.Time
}
