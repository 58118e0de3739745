package queries

import (
	"errors"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/pkg/errs"
	"waterdrop/internal/pkg/guard"
)

const (
	defaultOrdersPageSize = 20
	maxOrdersPageSize     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves a page of orders for the admin console, with an
// optional status filter and a free-text search over order number and
// address.
type ListOrdersQuery struct {
	status   *order.Status
	search   string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paged order listing query. Page numbering
// starts at 1; a zero page size falls back to the default.
func NewListOrdersQuery(status *order.Status, search string, page, pageSize int) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if page < 1 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultOrdersPageSize
	}
	if pageSize < 1 || pageSize > maxOrdersPageSize {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxOrdersPageSize)
	}

	return ListOrdersQuery{
		status:   status,
		search:   search,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil for all.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Search returns the free-text filter, empty for none.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// Page returns the requested page, starting at 1.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of rows per page.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// Offset returns the number of rows to skip.
func (q ListOrdersQuery) Offset() int {
	return (q.page - 1) * q.pageSize
}

// ListOrdersQueryRow is one order in the admin listing.
type ListOrdersQueryRow struct {
	ID         kernel.UUID
	Number     string
	CustomerID kernel.UUID
	Address    string
	Status     string
	Total      int
	PlacedAt   time.Time
}

// ListOrdersQueryResponse is a page of orders plus the unpaged total.
type ListOrdersQueryResponse struct {
	Orders []ListOrdersQueryRow
	Total  int
}
