package queries

import (
	"context"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPartnerOrdersQueryHandler retrieves a delivery partner's workload.
type GetPartnerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerOrdersQueryHandler creates a handler for partner workload queries.
func NewGetPartnerOrdersQueryHandler(db *gorm.DB) GetPartnerOrdersQueryHandler {
	return GetPartnerOrdersQueryHandler{db: db}
}

// Handle returns the partner's assigned orders, newest first, optionally
// filtered to one status.
func (h GetPartnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerOrdersQuery,
) ([]GetPartnerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			number,
			address,
			status,
			total,
			partner_earning,
			placed_at
		FROM orders
		WHERE delivery_partner_id = ?
	`
	args := []any{query.PartnerID().Bytes()}
	if query.Status() != nil {
		sqlQuery += " AND status = ?"
		args = append(args, *query.Status())
	}
	sqlQuery += " ORDER BY placed_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetPartnerOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetPartnerOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.Address,
			&status,
			&resp.Total,
			&resp.PartnerEarning,
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
		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
