// Package orderrepo persists the order aggregate. Line items and status
// history live in child tables and ride along with the order row through
// GORM associations.
package orderrepo

import (
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for one order.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number            string     `gorm:"uniqueIndex"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;index"`
	Address           string
	Subtotal          int
	DeliveryFee       int
	Discount          int
	Total             int
	CouponCode        string
	PaymentMethod     int
	PaymentStatus     int
	Status            int        `gorm:"index"`
	DeliveryPartnerID *uuid.UUID `gorm:"type:uuid;index"`
	PartnerEarning    int
	PlacedAt          time.Time  `gorm:"index"`
	DeliveredAt       *time.Time
	RatingValue       *int
	RatingFeedback    string

	Items   []OrderItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []StatusHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one snapshotted line item of an order.
type OrderItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
	Size      string
	Quantity  int
	UnitPrice int
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusHistoryDTO is one entry of an order's append-only status history.
type StatusHistoryDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	Status  int
	At      time.Time
	Note    string
}

// TableName overrides GORM's default naming to use "order_status_history".
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := o.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	var ratingValue *int
	ratingFeedback := ""
	if r := o.Rating(); r != nil {
		v := r.Value()
		ratingValue = &v
		ratingFeedback = r.Feedback()
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   o.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Name:      item.ProductName(),
			Size:      item.ProductSize(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	history := make([]StatusHistoryDTO, 0, len(o.History()))
	for _, entry := range o.History() {
		history = append(history, StatusHistoryDTO{
			ID:      entry.ID().Bytes(),
			OrderID: o.ID().Bytes(),
			Status:  int(entry.Status()),
			At:      entry.At(),
			Note:    entry.Note(),
		})
	}

	return OrderDTO{
		ID:                o.ID().Bytes(),
		Number:            o.Number().String(),
		CustomerID:        o.CustomerID().Bytes(),
		Address:           o.Address(),
		Subtotal:          o.Subtotal(),
		DeliveryFee:       o.DeliveryFee(),
		Discount:          o.Discount(),
		Total:             o.Total(),
		CouponCode:        o.CouponCode(),
		PaymentMethod:     int(o.PaymentMethod()),
		PaymentStatus:     int(o.PaymentStatus()),
		Status:            int(o.Status()),
		DeliveryPartnerID: partnerID,
		PartnerEarning:    o.PartnerEarning(),
		PlacedAt:          o.PlacedAt(),
		DeliveredAt:       o.DeliveredAt(),
		RatingValue:       ratingValue,
		RatingFeedback:    ratingFeedback,
		Items:             items,
		History:           history,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := kernel.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewItem(productID, itemDTO.Name, itemDTO.Size, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var partnerID *kernel.UUID
	if dto.DeliveryPartnerID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.DeliveryPartnerID)[:])
		if pErr != nil {
			return nil, pErr
		}
		partnerID = &pID
	}

	var rating *order.Rating
	if dto.RatingValue != nil {
		r, rErr := order.NewRating(*dto.RatingValue, dto.RatingFeedback)
		if rErr != nil {
			return nil, rErr
		}
		rating = &r
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, entryDTO := range dto.History {
		entryID, eErr := kernel.UUIDFromBytes(entryDTO.ID[:])
		if eErr != nil {
			return nil, eErr
		}
		entry, eErr := order.RestoreHistoryEntry(entryID, order.Status(entryDTO.Status), entryDTO.At, entryDTO.Note)
		if eErr != nil {
			return nil, eErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(
		id, number, customerID, items, dto.Address,
		order.PaymentMethod(dto.PaymentMethod), order.PaymentStatus(dto.PaymentStatus),
		order.Status(dto.Status), dto.DeliveryFee, dto.Discount, dto.CouponCode,
		partnerID, dto.PartnerEarning, dto.PlacedAt, dto.DeliveredAt, rating, history,
	)
}
