package ports

import (
	"context"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/payout"
)

// PayoutRepository defines the persistence contract for payouts.
type PayoutRepository interface {
	// Add persists a new payout to storage.
	Add(ctx context.Context, aggregate *payout.Payout) error

	// Update persists changes to an existing payout.
	Update(ctx context.Context, aggregate *payout.Payout) error

	// Get retrieves a payout by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payout.Payout, error)

	// GetByPartner retrieves a partner's payouts, newest first.
	GetByPartner(ctx context.Context, partnerID kernel.UUID) ([]*payout.Payout, error)

	// GetAll retrieves every payout, newest first.
	GetAll(ctx context.Context) ([]*payout.Payout, error)
}
