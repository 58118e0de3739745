package queries

import (
	"errors"

	"waterdrop/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery retrieves the administrator's operations overview.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query for the admin dashboard counters.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetDashboardQueryResponse holds the marketplace counters shown on the
// admin dashboard. ActiveOrders counts orders not yet delivered or
// cancelled; TodayRevenue sums the totals of orders placed since midnight.
type GetDashboardQueryResponse struct {
	TotalUsers    int
	TotalPartners int
	TotalProducts int
	TotalOrders   int
	TodayOrders   int
	ActiveOrders  int
	TodayRevenue  int
}
