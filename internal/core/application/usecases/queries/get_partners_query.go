package queries

import (
	"errors"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/guard"
)

var ErrGetPartnersQueryIsNotConstructed = errors.New(
	"GetPartnersQuery must be created via NewGetPartnersQuery constructor",
)

// GetPartnersQuery retrieves the delivery partner roster for administrators.
type GetPartnersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPartnersQuery creates a roster query.
func NewGetPartnersQuery() GetPartnersQuery {
	return GetPartnersQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnersQueryIsNotConstructed)
}

// GetPartnersQueryResponse is one roster entry.
type GetPartnersQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	VehicleNumber   string
	IsAvailable     bool
	IsActive        bool
	Rating          float64
	TotalDeliveries int
	TotalEarnings   int
	LocatedAt       *time.Time
}
