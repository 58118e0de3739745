// Package couponrepo persists coupons. Redemption counting goes through an
// atomic SQL increment so concurrent checkouts never overshoot the limit by
// losing an update.
package couponrepo

import (
	"time"

	"waterdrop/internal/core/domain/model/coupon"
	"waterdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CouponDTO is the database row for one coupon.
type CouponDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code          string    `gorm:"uniqueIndex"`
	Description   string
	DiscountType  int
	Value         int
	MaxDiscount   int
	MinOrderValue int
	ValidFrom     time.Time
	ValidUntil    time.Time
	UsageLimit    int
	UsedCount     int
	IsActive      bool `gorm:"index"`
}

// TableName overrides GORM's default naming to use "coupons".
func (CouponDTO) TableName() string {
	return "coupons"
}

func fromDomain(c *coupon.Coupon) CouponDTO {
	return CouponDTO{
		ID:            c.ID().Bytes(),
		Code:          c.Code(),
		Description:   c.Description(),
		DiscountType:  int(c.Type()),
		Value:         c.Value(),
		MaxDiscount:   c.MaxDiscount(),
		MinOrderValue: c.MinOrderValue(),
		ValidFrom:     c.ValidFrom(),
		ValidUntil:    c.ValidUntil(),
		UsageLimit:    c.UsageLimit(),
		UsedCount:     c.UsedCount(),
		IsActive:      c.IsActive(),
	}
}

func toDomain(dto CouponDTO) (*coupon.Coupon, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return coupon.RestoreCoupon(
		id, dto.Code, dto.Description, coupon.DiscountType(dto.DiscountType),
		dto.Value, dto.MaxDiscount, dto.MinOrderValue,
		dto.ValidFrom, dto.ValidUntil, dto.UsageLimit, dto.UsedCount, dto.IsActive,
	)
}
