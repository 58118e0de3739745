package queries

import (
	"errors"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/guard"
)

var ErrGetCouponsQueryIsNotConstructed = errors.New(
	"GetCouponsQuery must be created via NewGetCouponsQuery constructor",
)

// GetCouponsQuery retrieves every coupon for administrators, active or not.
type GetCouponsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCouponsQuery creates a coupon listing query.
func NewGetCouponsQuery() GetCouponsQuery {
	return GetCouponsQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCouponsQuery) Validate() error {
	return q.guard.Validate(ErrGetCouponsQueryIsNotConstructed)
}

// GetCouponsQueryResponse is one coupon row. DiscountType is the display
// string ("Percentage" or "Fixed").
type GetCouponsQueryResponse struct {
	ID            kernel.UUID
	Code          string
	Description   string
	DiscountType  string
	Value         int
	MaxDiscount   int
	MinOrderValue int
	ValidFrom     time.Time
	ValidUntil    time.Time
	UsageLimit    int
	UsedCount     int
	IsActive      bool
}
