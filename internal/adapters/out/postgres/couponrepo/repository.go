package couponrepo

import (
	"context"
	"errors"

	"waterdrop/internal/core/domain/model/coupon"
	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormCouponRepository implements CouponRepository using GORM.
type GormCouponRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCouponRepository creates a new GORM coupon repository.
func NewGormCouponRepository(db *gorm.DB, tracker aggregateTracker) *GormCouponRepository {
	return &GormCouponRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new coupon. A duplicate code surfaces as
// errs.ErrConstraintViolation.
func (r *GormCouponRepository) Add(ctx context.Context, aggregate *coupon.Coupon) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return errs.NewConstraintViolationErrorWithCause("coupon code", dto.Code, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing coupon. The usage counter is excluded: it only
// moves through IncrementUsage.
func (r *GormCouponRepository) Update(ctx context.Context, aggregate *coupon.Coupon) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CouponDTO{}).
		Where("id = ?", dto.ID).
		Select("Description", "DiscountType", "Value", "MaxDiscount", "MinOrderValue",
			"ValidFrom", "ValidUntil", "UsageLimit", "IsActive").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a coupon by ID.
func (r *GormCouponRepository) Get(ctx context.Context, id kernel.UUID) (*coupon.Coupon, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CouponDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coupon", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a coupon by its redemption code.
func (r *GormCouponRepository) GetByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto CouponDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coupon", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every coupon, active or not.
func (r *GormCouponRepository) GetAll(ctx context.Context) ([]*coupon.Coupon, error) {
	var dtos []CouponDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	coupons := make([]*coupon.Coupon, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, nil
}

// IncrementUsage consumes one redemption with an atomic increment. The guard
// on usage_limit keeps concurrent checkouts from overshooting a limited
// coupon.
func (r *GormCouponRepository) IncrementUsage(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&CouponDTO{}).
		Where("id = ? AND (usage_limit = 0 OR used_count < usage_limit)", id.Bytes()).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return coupon.ErrUsageLimitReached
	}

	return nil
}
