package queries

import (
	"context"
	"time"

	"waterdrop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardQueryHandler aggregates the counters for the admin overview.
// One round trip; the scalar subqueries run against the same snapshot.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardQueryHandler creates a handler for the dashboard query.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle returns the marketplace counters.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	var resp GetDashboardQueryResponse
	if err := query.Validate(); err != nil {
		return resp, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM delivery_partners),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE placed_at >= ?),
			(SELECT COUNT(*) FROM orders WHERE status NOT IN (?, ?)),
			(SELECT COALESCE(SUM(total), 0) FROM orders WHERE placed_at >= ? AND status != ?)
	`, dayStart, order.Delivered, order.Cancelled, dayStart, order.Cancelled).Row()

	err := row.Scan(
		&resp.TotalUsers,
		&resp.TotalPartners,
		&resp.TotalProducts,
		&resp.TotalOrders,
		&resp.TodayOrders,
		&resp.ActiveOrders,
		&resp.TodayRevenue,
	)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return resp, nil
}
