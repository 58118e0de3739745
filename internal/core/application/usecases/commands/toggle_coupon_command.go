package commands

import (
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/guard"
)

var ErrToggleCouponCommandIsNotConstructed = errors.New(
	"ToggleCouponCommand must be created via NewToggleCouponCommand constructor",
)

// ToggleCouponCommand represents an administrator switching a coupon on or
// off.
type ToggleCouponCommand struct { //nolint:recvcheck //using for validation
	couponID kernel.UUID
	active   bool

	guard guard.ConstructorGuard
}

// NewToggleCouponCommand creates a command to switch a coupon's active flag.
func NewToggleCouponCommand(couponID kernel.UUID, active bool) (ToggleCouponCommand, error) {
	cmd := ToggleCouponCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCouponID(couponID); err != nil {
		return ToggleCouponCommand{}, err
	}

	cmd.active = active

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleCouponCommand) Validate() error {
	return c.guard.Validate(ErrToggleCouponCommandIsNotConstructed)
}

// CouponID returns the coupon being switched.
func (c ToggleCouponCommand) CouponID() kernel.UUID {
	return c.couponID
}

// Active returns the requested state.
func (c ToggleCouponCommand) Active() bool {
	return c.active
}

func (c *ToggleCouponCommand) setCouponID(couponID kernel.UUID) error {
	if err := couponID.Validate(); err != nil {
		return err
	}

	c.couponID = couponID
	return nil
}
