package commands

import (
	"context"

	"waterdrop/internal/core/domain/model/coupon"
)

// CreateCouponCommandHandler adds promotional codes.
type CreateCouponCommandHandler struct {
	uowFactory CouponUoWFactory
}

// NewCreateCouponCommandHandler creates a handler for coupon creation.
func NewCreateCouponCommandHandler(uowFactory CouponUoWFactory) CreateCouponCommandHandler {
	return CreateCouponCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the coupon, active with zero redemptions. Fails with a
// constraint violation when the code is already taken.
func (h CreateCouponCommandHandler) Handle(ctx context.Context, cmd CreateCouponCommand) error {
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

	c, err := coupon.NewCoupon(
		cmd.CouponID(), cmd.Code(), cmd.Description(), cmd.DiscountType(),
		cmd.Value(), cmd.MaxDiscount(), cmd.MinOrderValue(),
		cmd.ValidFrom(), cmd.ValidUntil(), cmd.UsageLimit(),
	)
	if err != nil {
		return err
	}

	if err = uow.CouponRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
