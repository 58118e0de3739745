// Package payoutrepo persists payouts. The per-order breakdown lives in a
// child table and rides along with the payout row through a GORM
// association.
package payoutrepo

import (
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/payout"

	"github.com/google/uuid"
)

// PayoutDTO is the database row for one payout.
type PayoutDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartnerID   uuid.UUID `gorm:"type:uuid;index"`
	PeriodFrom  time.Time
	PeriodTo    time.Time
	Amount      int
	Method      int
	Status      int `gorm:"index"`
	Reference   string
	CreatedAt   time.Time `gorm:"index"`
	ProcessedAt *time.Time

	Entries []PayoutEntryDTO `gorm:"foreignKey:PayoutID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "payouts".
func (PayoutDTO) TableName() string {
	return "payouts"
}

// PayoutEntryDTO is one delivered order's contribution to a payout.
type PayoutEntryDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	PayoutID uuid.UUID `gorm:"type:uuid;index"`
	OrderID  uuid.UUID `gorm:"type:uuid"`
	Amount   int
}

// TableName overrides GORM's default naming to use "payout_entries".
func (PayoutEntryDTO) TableName() string {
	return "payout_entries"
}

func fromDomain(p *payout.Payout) PayoutDTO {
	entries := make([]PayoutEntryDTO, 0, len(p.Entries()))
	for _, entry := range p.Entries() {
		entries = append(entries, PayoutEntryDTO{
			PayoutID: p.ID().Bytes(),
			OrderID:  entry.OrderID().Bytes(),
			Amount:   entry.Amount(),
		})
	}

	return PayoutDTO{
		ID:          p.ID().Bytes(),
		PartnerID:   p.PartnerID().Bytes(),
		PeriodFrom:  p.Period().From(),
		PeriodTo:    p.Period().To(),
		Amount:      p.Amount(),
		Method:      int(p.Method()),
		Status:      int(p.Status()),
		Reference:   p.Reference(),
		CreatedAt:   p.CreatedAt(),
		ProcessedAt: p.ProcessedAt(),
		Entries:     entries,
	}
}

func toDomain(dto PayoutDTO) (*payout.Payout, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewPeriod(dto.PeriodFrom, dto.PeriodTo)
	if err != nil {
		return nil, err
	}

	entries := make([]payout.Entry, 0, len(dto.Entries))
	for _, entryDTO := range dto.Entries {
		orderID, idErr := kernel.UUIDFromBytes(entryDTO.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry, entryErr := payout.NewEntry(orderID, entryDTO.Amount)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return payout.RestorePayout(
		id, partnerID, period, entries,
		payout.Method(dto.Method), payout.Status(dto.Status),
		dto.Reference, dto.CreatedAt, dto.ProcessedAt,
	)
}
