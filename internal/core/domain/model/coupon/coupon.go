// Package coupon contains promotional discount codes applied at checkout.
package coupon

import (
	"errors"
	"fmt"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/errs"
	"waterdrop/internal/pkg/guard"
)

// DiscountType distinguishes percentage discounts from fixed amounts.
type DiscountType int

const (
	// UnknownDiscount is the invalid zero value.
	UnknownDiscount DiscountType = iota
	// Percentage takes a percent of the order value, optionally capped.
	Percentage
	// Fixed takes a flat amount off the order value.
	Fixed
)

var (
	// ErrCodeIsRequired is returned when creating a coupon without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrCouponIsNotConstructed is returned when using an improperly initialized Coupon.
	ErrCouponIsNotConstructed = errors.New("Coupon must be created via NewCoupon constructor")

	// ErrCouponInactive is returned when the coupon has been switched off.
	ErrCouponInactive = errors.New("coupon is not active")
	// ErrCouponExpired is returned when redeeming outside the validity window.
	ErrCouponExpired = errors.New("coupon is outside its validity period")
	// ErrUsageLimitReached is returned when the coupon has been fully redeemed.
	ErrUsageLimitReached = errors.New("coupon usage limit reached")
	// ErrBelowMinimumOrder is returned when the order value does not qualify.
	ErrBelowMinimumOrder = errors.New("order value is below the coupon minimum")
)

// String returns the human-readable discount type.
func (t DiscountType) String() string {
	switch t {
	case Percentage:
		return "Percentage"
	case Fixed:
		return "Fixed"
	default:
		return "Unknown"
	}
}

// Validate checks that the discount type is one of the known values.
func (t DiscountType) Validate() error {
	switch t {
	case Percentage, Fixed:
		return nil
	default:
		return errs.NewValueIsInvalidError("discount type")
	}
}

// Coupon is a promotional code. It knows how to compute the discount for a
// given order value at a given time; redemption counting is the caller's job
// via RecordUse after a successful placement.
//
// Business rules:
//   - Percentage coupons may cap the discount with maxDiscount (0 = no cap)
//   - The discount never exceeds the order value
//   - An order must meet minOrderValue to qualify
//   - Redemption requires the coupon to be active, inside [validFrom,
//     validUntil] and under its usage limit (0 = unlimited)
type Coupon struct {
	id            kernel.UUID
	code          string
	description   string
	discountType  DiscountType
	value         int
	maxDiscount   int
	minOrderValue int
	validFrom     time.Time
	validUntil    time.Time
	usageLimit    int
	usedCount     int
	isActive      bool

	guard guard.ConstructorGuard
}

// NewCoupon creates an active coupon with zero redemptions.
func NewCoupon(
	id kernel.UUID,
	code string,
	description string,
	discountType DiscountType,
	value int,
	maxDiscount int,
	minOrderValue int,
	validFrom time.Time,
	validUntil time.Time,
	usageLimit int,
) (*Coupon, error) {
	c := &Coupon{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setCode(code),
		c.setDiscount(discountType, value, maxDiscount),
		c.setMinOrderValue(minOrderValue),
		c.setValidity(validFrom, validUntil),
		c.setUsageLimit(usageLimit),
	); err != nil {
		return nil, err
	}

	c.description = description
	c.isActive = true

	return c, nil
}

// RestoreCoupon reconstructs a coupon from persistent storage.
func RestoreCoupon(
	id kernel.UUID,
	code string,
	description string,
	discountType DiscountType,
	value int,
	maxDiscount int,
	minOrderValue int,
	validFrom time.Time,
	validUntil time.Time,
	usageLimit int,
	usedCount int,
	isActive bool,
) (*Coupon, error) {
	c, err := NewCoupon(id, code, description, discountType, value,
		maxDiscount, minOrderValue, validFrom, validUntil, usageLimit)
	if err != nil {
		return nil, err
	}

	if usedCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("used count",
			fmt.Errorf("%d is negative", usedCount))
	}

	c.usedCount = usedCount
	c.isActive = isActive

	return c, nil
}

// Validate checks if the Coupon was properly constructed.
func (c *Coupon) Validate() error {
	if c == nil {
		return ErrCouponIsNotConstructed
	}
	return c.guard.Validate(ErrCouponIsNotConstructed)
}

// IsEqual compares two coupons by identity.
func (c *Coupon) IsEqual(other *Coupon) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Evaluate computes the discount this coupon grants for an order of the given
// value at the given time. It does not consume a redemption; call RecordUse
// once the order is actually placed.
func (c *Coupon) Evaluate(orderValue int, now time.Time) (int, error) {
	if !c.isActive {
		return 0, ErrCouponInactive
	}
	if now.Before(c.validFrom) || now.After(c.validUntil) {
		return 0, ErrCouponExpired
	}
	if c.usageLimit > 0 && c.usedCount >= c.usageLimit {
		return 0, ErrUsageLimitReached
	}
	if orderValue < c.minOrderValue {
		return 0, fmt.Errorf("%w: minimum is %d, got %d",
			ErrBelowMinimumOrder, c.minOrderValue, orderValue)
	}

	var discount int
	switch c.discountType {
	case Percentage:
		discount = orderValue * c.value / 100
		if c.maxDiscount > 0 && discount > c.maxDiscount {
			discount = c.maxDiscount
		}
	case Fixed:
		discount = c.value
	}

	if discount > orderValue {
		discount = orderValue
	}
	return discount, nil
}

// RecordUse consumes one redemption. Call it only after Evaluate succeeded
// and the order was placed.
func (c *Coupon) RecordUse() error {
	if c.usageLimit > 0 && c.usedCount >= c.usageLimit {
		return ErrUsageLimitReached
	}
	c.usedCount++
	return nil
}

// Activate switches the coupon on.
func (c *Coupon) Activate() {
	c.isActive = true
}

// Deactivate switches the coupon off without deleting it.
func (c *Coupon) Deactivate() {
	c.isActive = false
}

// ID returns the coupon identity.
func (c *Coupon) ID() kernel.UUID { return c.id }

// Code returns the redemption code customers type in.
func (c *Coupon) Code() string { return c.code }

// Description returns the free-form description.
func (c *Coupon) Description() string { return c.description }

// Type returns whether the discount is percentage-based or fixed.
func (c *Coupon) Type() DiscountType { return c.discountType }

// Value returns the percent (for Percentage) or amount (for Fixed).
func (c *Coupon) Value() int { return c.value }

// MaxDiscount returns the cap for percentage discounts, 0 when uncapped.
func (c *Coupon) MaxDiscount() int { return c.maxDiscount }

// MinOrderValue returns the minimum qualifying order value.
func (c *Coupon) MinOrderValue() int { return c.minOrderValue }

// ValidFrom returns the start of the validity window.
func (c *Coupon) ValidFrom() time.Time { return c.validFrom }

// ValidUntil returns the end of the validity window.
func (c *Coupon) ValidUntil() time.Time { return c.validUntil }

// UsageLimit returns the maximum number of redemptions, 0 when unlimited.
func (c *Coupon) UsageLimit() int { return c.usageLimit }

// UsedCount returns how many times the coupon has been redeemed.
func (c *Coupon) UsedCount() int { return c.usedCount }

// IsActive reports whether the coupon is switched on.
func (c *Coupon) IsActive() bool { return c.isActive }

func (c *Coupon) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Coupon) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *Coupon) setDiscount(discountType DiscountType, value, maxDiscount int) error {
	if err := discountType.Validate(); err != nil {
		return err
	}
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("discount value",
			fmt.Errorf("%d must be positive", value))
	}
	if discountType == Percentage && value > 100 {
		return errs.NewValueIsOutOfRangeError("discount value", value, 1, 100)
	}
	if maxDiscount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("max discount",
			fmt.Errorf("%d is negative", maxDiscount))
	}

	c.discountType = discountType
	c.value = value
	c.maxDiscount = maxDiscount
	return nil
}

func (c *Coupon) setMinOrderValue(minOrderValue int) error {
	if minOrderValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("min order value",
			fmt.Errorf("%d is negative", minOrderValue))
	}

	c.minOrderValue = minOrderValue
	return nil
}

func (c *Coupon) setValidity(validFrom, validUntil time.Time) error {
	if validFrom.IsZero() || validUntil.IsZero() {
		return errs.NewValueIsRequiredError("validity period")
	}
	if validUntil.Before(validFrom) {
		return errs.NewValueIsInvalidErrorWithCause("validity period",
			fmt.Errorf("valid until %s is before valid from %s", validUntil, validFrom))
	}

	c.validFrom = validFrom
	c.validUntil = validUntil
	return nil
}

func (c *Coupon) setUsageLimit(usageLimit int) error {
	if usageLimit < 0 {
		return errs.NewValueIsInvalidErrorWithCause("usage limit",
			fmt.Errorf("%d is negative", usageLimit))
	}

	c.usageLimit = usageLimit
	return nil
}
