package ports

import (
	"context"

	"waterdrop/internal/core/domain/model/coupon"
	"waterdrop/internal/core/domain/model/kernel"
)

// CouponRepository defines the persistence contract for coupons.
type CouponRepository interface {
	// Add persists a new coupon to storage. Fails with a constraint
	// violation when the code is already taken.
	Add(ctx context.Context, aggregate *coupon.Coupon) error

	// Update persists changes to an existing coupon.
	Update(ctx context.Context, aggregate *coupon.Coupon) error

	// Get retrieves a coupon by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*coupon.Coupon, error)

	// GetByCode retrieves a coupon by its redemption code.
	GetByCode(ctx context.Context, code string) (*coupon.Coupon, error)

	// GetAll retrieves every coupon, active or not.
	GetAll(ctx context.Context) ([]*coupon.Coupon, error)

	// IncrementUsage atomically consumes one redemption.
	IncrementUsage(ctx context.Context, id kernel.UUID) error
}
