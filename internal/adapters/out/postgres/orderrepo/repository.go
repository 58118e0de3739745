package orderrepo

import (
	"context"
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolationCode = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items and history. A duplicate order number
// surfaces as errs.ErrConstraintViolation so the caller can regenerate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return errs.NewConstraintViolationErrorWithCause("order number", dto.Number, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. History is append-only: new entries are
// inserted, existing ones are left untouched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("PaymentStatus", "Status", "DeliveryPartnerID", "PartnerEarning",
			"DeliveredAt", "RatingValue", "RatingFeedback").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.History) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.History).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an order by its human-readable number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.preloaded(ctx).First(&dto, "number = ?", number.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAvailable retrieves unassigned orders still waiting for a partner,
// newest first.
func (r *GormOrderRepository) GetAvailable(ctx context.Context, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Where("delivery_partner_id IS NULL AND status IN ?", []order.Status{order.Placed, order.Accepted}).
		Order("placed_at DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetFirstUnassigned retrieves the oldest unassigned placed order.
func (r *GormOrderRepository) GetFirstUnassigned(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	err := r.preloaded(ctx).
		Where("delivery_partner_id IS NULL AND status = ?", order.Placed).
		Order("placed_at ASC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first unassigned")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves a customer's orders, newest first.
func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("placed_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByPartner retrieves a partner's assigned orders, newest first.
func (r *GormOrderRepository) GetByPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Where("delivery_partner_id = ?", partnerID.Bytes()).
		Order("placed_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetDeliveredRatedByPartner retrieves the partner's delivered orders that
// carry a rating, for score aggregation.
func (r *GormOrderRepository) GetDeliveredRatedByPartner(
	ctx context.Context,
	partnerID kernel.UUID,
) ([]*order.Order, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Where("delivery_partner_id = ? AND status = ? AND rating_value IS NOT NULL",
			partnerID.Bytes(), order.Delivered).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetDeliveredByPartnerWithin retrieves the partner's orders delivered inside
// the period, both bounds inclusive.
func (r *GormOrderRepository) GetDeliveredByPartnerWithin(
	ctx context.Context,
	partnerID kernel.UUID,
	period kernel.Period,
) ([]*order.Order, error) {
	if err := errors.Join(partnerID.Validate(), period.Validate()); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.preloaded(ctx).
		Where("delivery_partner_id = ? AND status = ? AND delivered_at BETWEEN ? AND ?",
			partnerID.Bytes(), order.Delivered, period.From(), period.To()).
		Order("delivered_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Assign persists a partner assignment with a conditional update that only
// succeeds while the stored order is still unassigned. The loser of a
// concurrent assignment race gets order.ErrOrderAlreadyAssigned.
func (r *GormOrderRepository) Assign(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND delivery_partner_id IS NULL", dto.ID).
		Updates(map[string]any{
			"delivery_partner_id": dto.DeliveryPartnerID,
			"status":              dto.Status,
			"partner_earning":     dto.PartnerEarning,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderAlreadyAssigned
	}

	if len(dto.History) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.History).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items").Preload("History")
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
