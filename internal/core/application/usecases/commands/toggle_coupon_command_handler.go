package commands

import (
	"context"
)

// ToggleCouponCommandHandler switches coupons on and off.
type ToggleCouponCommandHandler struct {
	uowFactory CouponUoWFactory
}

// NewToggleCouponCommandHandler creates a handler for coupon toggles.
func NewToggleCouponCommandHandler(uowFactory CouponUoWFactory) ToggleCouponCommandHandler {
	return ToggleCouponCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle flips the coupon's active flag.
func (h ToggleCouponCommandHandler) Handle(ctx context.Context, cmd ToggleCouponCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	couponRepo := uow.CouponRepository()

	c, err := couponRepo.Get(ctx, cmd.CouponID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		c.Activate()
	} else {
		c.Deactivate()
	}

	if err = couponRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
