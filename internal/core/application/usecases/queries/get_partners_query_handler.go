package queries

import (
	"context"
	"database/sql"

	"waterdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPartnersQueryHandler retrieves the partner roster from the database.
type GetPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnersQueryHandler creates a handler for roster reads.
func NewGetPartnersQueryHandler(db *gorm.DB) GetPartnersQueryHandler {
	return GetPartnersQueryHandler{db: db}
}

// Handle returns every delivery partner sorted by name.
func (h GetPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnersQuery,
) ([]GetPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			name,
			phone,
			vehicle_number,
			is_available,
			is_active,
			rating,
			total_deliveries,
			total_earnings,
			located_at
		FROM delivery_partners
		ORDER BY name
	`

	partners := make([]GetPartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(stmt).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPartnersQueryResponse
		var id uuid.UUID
		var locatedAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.VehicleNumber,
			&resp.IsAvailable,
			&resp.IsActive,
			&resp.Rating,
			&resp.TotalDeliveries,
			&resp.TotalEarnings,
			&locatedAt,
		)
		if err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = partnerID
		if locatedAt.Valid {
			at := locatedAt.Time
			resp.LocatedAt = &at
		}
		partners = append(partners, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
