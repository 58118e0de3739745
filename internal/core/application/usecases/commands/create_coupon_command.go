package commands

import (
	"errors"
	"time"

	"waterdrop/internal/core/domain/model/coupon"
	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/guard"
)

var ErrCreateCouponCommandIsNotConstructed = errors.New(
	"CreateCouponCommand must be created via NewCreateCouponCommand constructor",
)

// CreateCouponCommand represents an administrator creating a promotional
// code. The discount semantics are validated by the coupon aggregate at
// handling time.
type CreateCouponCommand struct { //nolint:recvcheck //using for validation
	couponID      kernel.UUID
	code          string
	description   string
	discountType  coupon.DiscountType
	value         int
	maxDiscount   int
	minOrderValue int
	validFrom     time.Time
	validUntil    time.Time
	usageLimit    int

	guard guard.ConstructorGuard
}

// NewCreateCouponCommand creates a command to add a coupon.
func NewCreateCouponCommand(
	couponID kernel.UUID,
	code string,
	description string,
	discountType coupon.DiscountType,
	value int,
	maxDiscount int,
	minOrderValue int,
	validFrom time.Time,
	validUntil time.Time,
	usageLimit int,
) (CreateCouponCommand, error) {
	cmd := CreateCouponCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCouponID(couponID),
		cmd.setCode(code),
		discountType.Validate(),
	); err != nil {
		return CreateCouponCommand{}, err
	}

	cmd.description = description
	cmd.discountType = discountType
	cmd.value = value
	cmd.maxDiscount = maxDiscount
	cmd.minOrderValue = minOrderValue
	cmd.validFrom = validFrom
	cmd.validUntil = validUntil
	cmd.usageLimit = usageLimit

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCouponCommand) Validate() error {
	return c.guard.Validate(ErrCreateCouponCommandIsNotConstructed)
}

// CouponID returns the identity the new coupon will carry.
func (c CreateCouponCommand) CouponID() kernel.UUID { return c.couponID }

// Code returns the redemption code.
func (c CreateCouponCommand) Code() string { return c.code }

// Description returns the free-form description.
func (c CreateCouponCommand) Description() string { return c.description }

// DiscountType returns the discount semantics.
func (c CreateCouponCommand) DiscountType() coupon.DiscountType { return c.discountType }

// Value returns the percent or flat amount.
func (c CreateCouponCommand) Value() int { return c.value }

// MaxDiscount returns the percentage cap, 0 for uncapped.
func (c CreateCouponCommand) MaxDiscount() int { return c.maxDiscount }

// MinOrderValue returns the minimum qualifying order value.
func (c CreateCouponCommand) MinOrderValue() int { return c.minOrderValue }

// ValidFrom returns the start of the validity window.
func (c CreateCouponCommand) ValidFrom() time.Time { return c.validFrom }

// ValidUntil returns the end of the validity window.
func (c CreateCouponCommand) ValidUntil() time.Time { return c.validUntil }

// UsageLimit returns the redemption cap, 0 for unlimited.
func (c CreateCouponCommand) UsageLimit() int { return c.usageLimit }

func (c *CreateCouponCommand) setCouponID(couponID kernel.UUID) error {
	if err := couponID.Validate(); err != nil {
		return err
	}

	c.couponID = couponID
	return nil
}

func (c *CreateCouponCommand) setCode(code string) error {
	if code == "" {
		return coupon.ErrCodeIsRequired
	}

	c.code = code
	return nil
}
