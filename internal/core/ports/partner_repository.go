package ports

import (
	"context"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	Add(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Update persists changes to an existing partner aggregate.
	Update(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Get retrieves a partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error)

	// GetAll retrieves every partner, active or not.
	GetAll(ctx context.Context) ([]*partner.DeliveryPartner, error)

	// GetAllAvailable retrieves active partners currently open for
	// assignment.
	GetAllAvailable(ctx context.Context) ([]*partner.DeliveryPartner, error)

	// IncrementDeliveryStats atomically credits one delivery and its
	// earning to the partner's lifetime counters and frees the partner for
	// the next order. A single statement so concurrent deliveries never
	// lose an increment.
	IncrementDeliveryStats(ctx context.Context, id kernel.UUID, earning int) error

	// SetAvailability flips the partner's availability flag without
	// rewriting the rest of the aggregate.
	SetAvailability(ctx context.Context, id kernel.UUID, available bool) error
}
