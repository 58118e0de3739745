package queries

import (
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/guard"
)

var ErrGetPartnerEarningsQueryIsNotConstructed = errors.New(
	"GetPartnerEarningsQuery must be created via NewGetPartnerEarningsQuery constructor",
)

// GetPartnerEarningsQuery retrieves a delivery partner's earnings summary:
// how much they made today, this week, this month and over their lifetime.
type GetPartnerEarningsQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerEarningsQuery creates a query for a partner's earnings.
func NewGetPartnerEarningsQuery(partnerID kernel.UUID) (GetPartnerEarningsQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerEarningsQuery{}, err
	}

	return GetPartnerEarningsQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerEarningsQueryIsNotConstructed)
}

// PartnerID returns the partner whose earnings are requested.
func (q GetPartnerEarningsQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

// GetPartnerEarningsQueryResponse summarizes a partner's delivery income.
// Period sums are computed from delivered orders; the lifetime figures come
// from the partner's own counters so they survive order archival.
type GetPartnerEarningsQueryResponse struct {
	Today           int
	ThisWeek        int
	ThisMonth       int
	Lifetime        int
	TotalDeliveries int
}
