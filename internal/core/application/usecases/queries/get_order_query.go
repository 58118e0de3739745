package queries

import (
	"errors"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items and status timeline.
// Ownership checks are the caller's responsibility.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryItem is one line item of the order detail.
type GetOrderQueryItem struct {
	ProductID kernel.UUID
	Name      string
	Size      string
	Quantity  int
	UnitPrice int
}

// GetOrderQueryEvent is one entry of the order's status timeline.
type GetOrderQueryEvent struct {
	Status string
	At     time.Time
	Note   string
}

// GetOrderQueryResponse is the full order detail.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	Number         string
	CustomerID     kernel.UUID
	PartnerID      *kernel.UUID
	Address        string
	Subtotal       int
	DeliveryFee    int
	Discount       int
	Total          int
	CouponCode     string
	PaymentMethod  string
	PaymentStatus  string
	Status         string
	RatingValue    int // 0 when the order has not been rated
	RatingFeedback string
	PlacedAt       time.Time
	DeliveredAt    *time.Time
	Items          []GetOrderQueryItem
	History        []GetOrderQueryEvent
}
