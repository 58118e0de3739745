package payoutrepo

import (
	"context"
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/payout"
	"waterdrop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPayoutRepository implements PayoutRepository using GORM.
type GormPayoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPayoutRepository creates a new GORM payout repository.
func NewGormPayoutRepository(db *gorm.DB, tracker aggregateTracker) *GormPayoutRepository {
	return &GormPayoutRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payout with its per-order breakdown.
func (r *GormPayoutRepository) Add(ctx context.Context, aggregate *payout.Payout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the processing decision on an existing payout. Entries are
// fixed at creation and never rewritten.
func (r *GormPayoutRepository) Update(ctx context.Context, aggregate *payout.Payout) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PayoutDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "Reference", "ProcessedAt").
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

// Get retrieves a payout by ID.
func (r *GormPayoutRepository) Get(ctx context.Context, id kernel.UUID) (*payout.Payout, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PayoutDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payout", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPartner retrieves a partner's payouts, newest first.
func (r *GormPayoutRepository) GetByPartner(ctx context.Context, partnerID kernel.UUID) ([]*payout.Payout, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PayoutDTO
	err := r.preloaded(ctx).
		Where("partner_id = ?", partnerID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves every payout, newest first.
func (r *GormPayoutRepository) GetAll(ctx context.Context) ([]*payout.Payout, error) {
	var dtos []PayoutDTO
	err := r.preloaded(ctx).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func (r *GormPayoutRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Entries")
}

func toDomainSlice(dtos []PayoutDTO) ([]*payout.Payout, error) {
	payouts := make([]*payout.Payout, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, nil
}
