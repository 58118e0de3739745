package queries

import (
	"context"

	"waterdrop/internal/core/domain/model/coupon"
	"waterdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCouponsQueryHandler retrieves the coupon list from the database.
type GetCouponsQueryHandler struct {
	db *gorm.DB
}

// NewGetCouponsQueryHandler creates a handler for coupon listing.
func NewGetCouponsQueryHandler(db *gorm.DB) GetCouponsQueryHandler {
	return GetCouponsQueryHandler{db: db}
}

// Handle returns every coupon, newest validity window first.
func (h GetCouponsQueryHandler) Handle(
	ctx context.Context,
	query GetCouponsQuery,
) ([]GetCouponsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			code,
			description,
			discount_type,
			value,
			max_discount,
			min_order_value,
			valid_from,
			valid_until,
			usage_limit,
			used_count,
			is_active
		FROM coupons
		ORDER BY valid_until DESC
	`

	coupons := make([]GetCouponsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(stmt).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCouponsQueryResponse
		var id uuid.UUID
		var discountType int

		err = rows.Scan(
			&id,
			&resp.Code,
			&resp.Description,
			&discountType,
			&resp.Value,
			&resp.MaxDiscount,
			&resp.MinOrderValue,
			&resp.ValidFrom,
			&resp.ValidUntil,
			&resp.UsageLimit,
			&resp.UsedCount,
			&resp.IsActive,
		)
		if err != nil {
			return nil, err
		}

		couponID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = couponID
		resp.DiscountType = coupon.DiscountType(discountType).String()
		coupons = append(coupons, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return coupons, nil
}
