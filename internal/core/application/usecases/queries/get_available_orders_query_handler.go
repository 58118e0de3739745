package queries

import (
	"context"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler retrieves the unassigned order feed from the
// database. Reads go straight to SQL for performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAvailableOrdersQueryHandler(db)
//	query, _ := NewGetAvailableOrdersQuery(20)
//
//	feed, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders waiting for pickup\n", len(feed))
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for the pickup feed.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle returns unassigned orders still waiting for a partner, newest
// first. Accepted rides along with Placed to match rows an admin moved
// forward before assignment.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			address,
			total,
			placed_at
		FROM orders
		WHERE delivery_partner_id IS NULL AND status IN (?, ?)
		ORDER BY placed_at DESC
		LIMIT ?
	`, order.Placed, order.Accepted, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.Address,
			&resp.Total,
			&resp.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
