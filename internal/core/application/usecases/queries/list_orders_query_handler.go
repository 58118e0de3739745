package queries

import (
	"context"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders for the admin console.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for admin order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns one page of orders matching the filters, newest first,
// along with the total match count for pagination.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	var resp ListOrdersQueryResponse
	if err := query.Validate(); err != nil {
		return resp, err
	}

	where := " WHERE 1=1"
	args := []any{}
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, *query.Status())
	}
	if query.Search() != "" {
		where += " AND (number ILIKE ? OR address ILIKE ?)"
		pattern := "%" + query.Search() + "%"
		args = append(args, pattern, pattern)
	}

	row := h.db.WithContext(ctx).Raw("SELECT COUNT(*) FROM orders"+where, args...).Row()
	if err := row.Scan(&resp.Total); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			address,
			status,
			total,
			placed_at
		FROM orders`+where+`
		ORDER BY placed_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), query.Offset())...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	resp.Orders = make([]ListOrdersQueryRow, 0, query.PageSize())
	for rows.Next() {
		var r ListOrdersQueryRow
		var id, customerID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&r.Number,
			&customerID,
			&r.Address,
			&status,
			&r.Total,
			&r.PlacedAt,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		r.ID = orderID
		r.CustomerID = custID
		r.Status = order.Status(status).String()
		resp.Orders = append(resp.Orders, r)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return resp, nil
}
