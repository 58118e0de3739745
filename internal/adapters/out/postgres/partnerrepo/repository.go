package partnerrepo

import (
	"context"
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/partner"
	"waterdrop/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery partner. A duplicate phone number surfaces as
// errs.ErrConstraintViolation.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return errs.NewConstraintViolationErrorWithCause("phone", dto.Phone, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery partner.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PartnerDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "VehicleNumber", "PushToken", "IsAvailable", "IsActive",
			"Rating", "LocationLat", "LocationLng", "LocatedAt").
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

// Get retrieves a delivery partner by ID.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery partner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every delivery partner, sorted by name.
func (r *GormPartnerRepository) GetAll(ctx context.Context) ([]*partner.DeliveryPartner, error) {
	var dtos []PartnerDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAvailable retrieves the partners eligible for assignment: active and
// currently available.
func (r *GormPartnerRepository) GetAllAvailable(ctx context.Context) ([]*partner.DeliveryPartner, error) {
	var dtos []PartnerDTO
	err := r.db.WithContext(ctx).
		Where("is_active AND is_available").
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// IncrementDeliveryStats credits one delivery in a single statement: bumps
// the lifetime counters and frees the partner for the next order. Atomic
// increments keep concurrent completions from losing credits.
func (r *GormPartnerRepository) IncrementDeliveryStats(ctx context.Context, id kernel.UUID, earning int) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&PartnerDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"total_deliveries": gorm.Expr("total_deliveries + 1"),
			"total_earnings":   gorm.Expr("total_earnings + ?", earning),
			"is_available":     gorm.Expr("is_active"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery partner", id.String())
	}

	return nil
}

// SetAvailability flips the partner's availability without touching the rest
// of the row.
func (r *GormPartnerRepository) SetAvailability(ctx context.Context, id kernel.UUID, available bool) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&PartnerDTO{}).
		Where("id = ?", id.Bytes()).
		Update("is_available", available)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery partner", id.String())
	}

	return nil
}

func toDomainSlice(dtos []PartnerDTO) ([]*partner.DeliveryPartner, error) {
	partners := make([]*partner.DeliveryPartner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, nil
}
