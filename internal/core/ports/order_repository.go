package ports

import (
	"context"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. Fails with a
	// constraint violation when the order number is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its human-readable number.
	GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetAvailable retrieves up to limit unassigned orders in the statuses
	// a partner can pick up, newest first.
	GetAvailable(ctx context.Context, limit int) ([]*order.Order, error)

	// GetFirstUnassigned retrieves the oldest unassigned order in Placed
	// status. Used by the auto-assignment job.
	GetFirstUnassigned(ctx context.Context) (*order.Order, error)

	// GetByCustomer retrieves a customer's orders, newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByPartner retrieves a partner's assigned orders, newest first.
	GetByPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error)

	// GetDeliveredRatedByPartner retrieves the partner's delivered orders
	// that carry a rating. Used to recompute the partner's aggregate score.
	GetDeliveredRatedByPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error)

	// GetDeliveredByPartnerWithin retrieves the partner's orders delivered
	// inside the period, bounds inclusive. Used to build payouts.
	GetDeliveredByPartnerWithin(ctx context.Context, partnerID kernel.UUID, period kernel.Period) ([]*order.Order, error)

	// Assign persists the partner assignment only while the stored order is
	// still unassigned. Returns order.ErrOrderAlreadyAssigned when another
	// request won the race.
	Assign(ctx context.Context, aggregate *order.Order) error
}
