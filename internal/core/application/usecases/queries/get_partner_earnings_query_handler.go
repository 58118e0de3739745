package queries

import (
	"context"
	"time"

	"waterdrop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPartnerEarningsQueryHandler computes a partner's earnings summary.
type GetPartnerEarningsQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerEarningsQueryHandler creates a handler for earnings queries.
func NewGetPartnerEarningsQueryHandler(db *gorm.DB) GetPartnerEarningsQueryHandler {
	return GetPartnerEarningsQueryHandler{db: db}
}

// Handle returns the partner's earnings for today, the last 7 days, the last
// 30 days and their lifetime totals.
func (h GetPartnerEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerEarningsQuery,
) (GetPartnerEarningsQueryResponse, error) {
	var resp GetPartnerEarningsQueryResponse
	if err := query.Validate(); err != nil {
		return resp, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.AddDate(0, 0, -6)
	monthStart := dayStart.AddDate(0, 0, -29)

	partnerID := query.PartnerID().Bytes()

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(partner_earning) FILTER (WHERE delivered_at >= ?), 0),
			COALESCE(SUM(partner_earning) FILTER (WHERE delivered_at >= ?), 0),
			COALESCE(SUM(partner_earning) FILTER (WHERE delivered_at >= ?), 0)
		FROM orders
		WHERE delivery_partner_id = ? AND status = ?
	`, dayStart, weekStart, monthStart, partnerID, order.Delivered).Row()

	if err := row.Scan(&resp.Today, &resp.ThisWeek, &resp.ThisMonth); err != nil {
		return GetPartnerEarningsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT total_earnings, total_deliveries
		FROM delivery_partners
		WHERE id = ?
	`, partnerID).Row()

	if err := row.Scan(&resp.Lifetime, &resp.TotalDeliveries); err != nil {
		return GetPartnerEarningsQueryResponse{}, err
	}

	return resp, nil
}
