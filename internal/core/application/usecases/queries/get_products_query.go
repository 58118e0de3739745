package queries

import (
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the catalog. Customers see the orderable subset;
// administrators see everything.
type GetProductsQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a catalog query.
func NewGetProductsQuery(availableOnly bool) GetProductsQuery {
	return GetProductsQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// AvailableOnly reports whether unavailable entries are filtered out.
func (q GetProductsQuery) AvailableOnly() bool {
	return q.availableOnly
}

// GetProductsQueryResponse is one catalog entry.
type GetProductsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Description   string
	Size          string
	Price         int
	DiscountPrice int
	IsAvailable   bool
}
