// Package queries contains read operations that bypass the domain model.
// Implements the query side of the CQRS architecture: handlers read the
// database directly and return flat response structs shaped for the caller.
package queries

import (
	"errors"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/errs"
	"waterdrop/internal/pkg/guard"
)

// defaultAvailableOrdersLimit caps the feed when the caller does not ask for
// a specific page size.
const defaultAvailableOrdersLimit = 20

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves orders waiting for a delivery partner,
// newest first. Partners browse this feed to pick up work.
type GetAvailableOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the unassigned order feed.
// A non-positive limit falls back to the default page size.
func NewGetAvailableOrdersQuery(limit int) (GetAvailableOrdersQuery, error) {
	if limit < 0 {
		return GetAvailableOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, 100)
	}
	if limit == 0 {
		limit = defaultAvailableOrdersLimit
	}

	return GetAvailableOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// Limit returns the maximum number of orders to return.
func (q GetAvailableOrdersQuery) Limit() int {
	return q.limit
}

// GetAvailableOrdersQueryResponse is one order in the pickup feed.
type GetAvailableOrdersQueryResponse struct {
	ID       kernel.UUID
	Number   string
	Address  string
	Total    int
	PlacedAt time.Time
}
