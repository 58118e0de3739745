// Package partnerrepo persists the delivery partner aggregate. Lifetime
// counters are updated with atomic SQL increments rather than full row
// rewrites so concurrent deliveries never lose a credit.
package partnerrepo

import (
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO is the database row for one delivery partner.
type PartnerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Phone           string `gorm:"uniqueIndex"`
	VehicleNumber   string
	PushToken       string
	IsAvailable     bool `gorm:"index"`
	IsActive        bool `gorm:"index"`
	Rating          float64
	TotalDeliveries int
	TotalEarnings   int
	LocationLat     *float64
	LocationLng     *float64
	LocatedAt       *time.Time
}

// TableName overrides GORM's default naming to use "delivery_partners".
func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

func fromDomain(p *partner.DeliveryPartner) PartnerDTO {
	var lat, lng *float64
	if loc := p.Location(); loc != nil {
		latV, lngV := loc.Latitude(), loc.Longitude()
		lat, lng = &latV, &lngV
	}

	return PartnerDTO{
		ID:              p.ID().Bytes(),
		Name:            p.Name(),
		Phone:           p.Phone(),
		VehicleNumber:   p.VehicleNumber(),
		PushToken:       p.PushToken(),
		IsAvailable:     p.IsAvailable(),
		IsActive:        p.IsActive(),
		Rating:          p.Rating(),
		TotalDeliveries: p.TotalDeliveries(),
		TotalEarnings:   p.TotalEarnings(),
		LocationLat:     lat,
		LocationLng:     lng,
		LocatedAt:       p.LocatedAt(),
	}
}

func toDomain(dto PartnerDTO) (*partner.DeliveryPartner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLng != nil {
		loc, locErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLng)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return partner.RestoreDeliveryPartner(
		id, dto.Name, dto.Phone, dto.VehicleNumber, dto.PushToken,
		dto.IsAvailable, dto.IsActive, dto.Rating,
		dto.TotalDeliveries, dto.TotalEarnings, location, dto.LocatedAt,
	)
}
