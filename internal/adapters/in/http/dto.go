package http

import (
	"time"

	"waterdrop/internal/core/application/usecases/queries"
	"waterdrop/internal/core/domain/model/coupon"
	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/core/domain/model/payout"
	"waterdrop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// Wire values for enums. Parsing is strict: unknown values are rejected at
// the edge instead of leaking zero values into commands.

var paymentMethods = map[string]order.PaymentMethod{
	"cod":    order.CashOnDelivery,
	"online": order.Online,
}

var orderStatuses = map[string]order.Status{
	"placed":           order.Placed,
	"accepted":         order.Accepted,
	"preparing":        order.Preparing,
	"out_for_delivery": order.OutForDelivery,
	"delivered":        order.Delivered,
	"cancelled":        order.Cancelled,
}

var payoutMethods = map[string]payout.Method{
	"bank_transfer": payout.BankTransfer,
	"upi":           payout.UPI,
	"cash":          payout.Cash,
}

var payoutStatuses = map[string]payout.Status{
	"pending":    payout.Pending,
	"processing": payout.Processing,
	"completed":  payout.Completed,
	"failed":     payout.Failed,
}

var discountTypes = map[string]coupon.DiscountType{
	"percentage": coupon.Percentage,
	"fixed":      coupon.Fixed,
}

// RegisterUserRequest is the body of POST /users/register.
type RegisterUserRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Role          string `json:"role"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
}

// UserResponse is the representation of an account.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Role      string     `json:"role"`
	PartnerID *uuid.UUID `json:"partner_id,omitempty"`
	IsActive  bool       `json:"is_active"`
}

func toUserResponse(u *user.User) UserResponse {
	resp := UserResponse{
		ID:       u.ID().Bytes(),
		Name:     u.Name(),
		Phone:    u.Phone(),
		Role:     u.Role().String(),
		IsActive: u.IsActive(),
	}
	if pid := u.PartnerID(); pid != nil {
		raw := pid.Bytes()
		resp.PartnerID = &raw
	}
	return resp
}

// PlaceOrderRequest is the body of POST /orders.
type PlaceOrderRequest struct {
	Items         []PlaceOrderItem `json:"items"`
	Address       string           `json:"address"`
	PaymentMethod string           `json:"payment_method"`
	CouponCode    string           `json:"coupon_code,omitempty"`
	PaymentRef    string           `json:"payment_ref,omitempty"`
	Signature     string           `json:"signature,omitempty"`
}

// PlaceOrderItem is one requested catalog line.
type PlaceOrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// OrderItemResponse is one snapshotted line item.
type OrderItemResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	UnitPrice int       `json:"unit_price"`
}

// OrderResponse is the full representation of an order.
type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	Number         string              `json:"number"`
	Status         string              `json:"status"`
	Address        string              `json:"address"`
	Subtotal       int                 `json:"subtotal"`
	DeliveryFee    int                 `json:"delivery_fee"`
	Discount       int                 `json:"discount"`
	Total          int                 `json:"total"`
	CouponCode     string              `json:"coupon_code,omitempty"`
	PaymentMethod  string              `json:"payment_method"`
	PaymentStatus  string              `json:"payment_status"`
	PartnerID      *uuid.UUID          `json:"partner_id,omitempty"`
	RatingValue    int                 `json:"rating_value,omitempty"`
	RatingFeedback string              `json:"rating_feedback,omitempty"`
	PlacedAt       time.Time           `json:"placed_at"`
	DeliveredAt    *time.Time          `json:"delivered_at,omitempty"`
	Items          []OrderItemResponse `json:"items"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID().Bytes(),
			Name:      item.ProductName(),
			Size:      item.ProductSize(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	resp := OrderResponse{
		ID:            o.ID().Bytes(),
		Number:        o.Number().String(),
		Status:        o.Status().String(),
		Address:       o.Address(),
		Subtotal:      o.Subtotal(),
		DeliveryFee:   o.DeliveryFee(),
		Discount:      o.Discount(),
		Total:         o.Total(),
		CouponCode:    o.CouponCode(),
		PaymentMethod: o.PaymentMethod().String(),
		PaymentStatus: o.PaymentStatus().String(),
		PlacedAt:      o.PlacedAt(),
		DeliveredAt:   o.DeliveredAt(),
		Items:         items,
	}
	if pid := o.Partner(); pid != nil {
		raw := pid.Bytes()
		resp.PartnerID = &raw
	}
	if r := o.Rating(); r != nil {
		resp.RatingValue = r.Value()
		resp.RatingFeedback = r.Feedback()
	}
	return resp
}

// OrderDetailResponse is the read-model order detail with its timeline.
type OrderDetailResponse struct {
	ID             uuid.UUID            `json:"id"`
	Number         string               `json:"number"`
	CustomerID     uuid.UUID            `json:"customer_id"`
	PartnerID      *uuid.UUID           `json:"partner_id,omitempty"`
	Status         string               `json:"status"`
	Address        string               `json:"address"`
	Subtotal       int                  `json:"subtotal"`
	DeliveryFee    int                  `json:"delivery_fee"`
	Discount       int                  `json:"discount"`
	Total          int                  `json:"total"`
	CouponCode     string               `json:"coupon_code,omitempty"`
	PaymentMethod  string               `json:"payment_method"`
	PaymentStatus  string               `json:"payment_status"`
	RatingValue    int                  `json:"rating_value,omitempty"`
	RatingFeedback string               `json:"rating_feedback,omitempty"`
	PlacedAt       time.Time            `json:"placed_at"`
	DeliveredAt    *time.Time           `json:"delivered_at,omitempty"`
	Items          []OrderItemResponse  `json:"items"`
	History        []OrderEventResponse `json:"history"`
}

// OrderEventResponse is one entry of the status timeline.
type OrderEventResponse struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
	Note   string    `json:"note,omitempty"`
}

func toOrderDetailResponse(detail *queries.GetOrderQueryResponse) OrderDetailResponse {
	items := make([]OrderItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID.Bytes(),
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	history := make([]OrderEventResponse, 0, len(detail.History))
	for _, event := range detail.History {
		history = append(history, OrderEventResponse{
			Status: event.Status,
			At:     event.At,
			Note:   event.Note,
		})
	}

	resp := OrderDetailResponse{
		ID:             detail.ID.Bytes(),
		Number:         detail.Number,
		CustomerID:     detail.CustomerID.Bytes(),
		Status:         detail.Status,
		Address:        detail.Address,
		Subtotal:       detail.Subtotal,
		DeliveryFee:    detail.DeliveryFee,
		Discount:       detail.Discount,
		Total:          detail.Total,
		CouponCode:     detail.CouponCode,
		PaymentMethod:  detail.PaymentMethod,
		PaymentStatus:  detail.PaymentStatus,
		RatingValue:    detail.RatingValue,
		RatingFeedback: detail.RatingFeedback,
		PlacedAt:       detail.PlacedAt,
		DeliveredAt:    detail.DeliveredAt,
		Items:          items,
		History:        history,
	}
	if detail.PartnerID != nil {
		raw := detail.PartnerID.Bytes()
		resp.PartnerID = &raw
	}
	return resp
}

// RateOrderRequest is the body of POST /orders/:id/rating.
type RateOrderRequest struct {
	Value    int    `json:"value"`
	Feedback string `json:"feedback,omitempty"`
}

// ChangeOrderStatusRequest is the body of PATCH .../orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// AssignPartnerRequest is the body of POST /admin/orders/:id/assign.
type AssignPartnerRequest struct {
	PartnerID uuid.UUID `json:"partner_id"`
}

// UpdateLocationRequest is the body of PUT /partner/location.
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ToggleAvailabilityRequest is the body of PUT /partner/availability.
type ToggleAvailabilityRequest struct {
	Available bool `json:"available"`
}

// ProductRequest is the body of product create and update calls.
type ProductRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Size          string `json:"size"`
	Price         int    `json:"price"`
	DiscountPrice int    `json:"discount_price,omitempty"`
	IsAvailable   *bool  `json:"is_available,omitempty"`
}

// ProductResponse is one catalog entry.
type ProductResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Size          string    `json:"size"`
	Price         int       `json:"price"`
	DiscountPrice int       `json:"discount_price,omitempty"`
	IsAvailable   bool      `json:"is_available"`
}

// CreateCouponRequest is the body of POST /admin/coupons.
type CreateCouponRequest struct {
	Code          string    `json:"code"`
	Description   string    `json:"description,omitempty"`
	DiscountType  string    `json:"discount_type"`
	Value         int       `json:"value"`
	MaxDiscount   int       `json:"max_discount,omitempty"`
	MinOrderValue int       `json:"min_order_value,omitempty"`
	ValidFrom     time.Time `json:"valid_from"`
	ValidUntil    time.Time `json:"valid_until"`
	UsageLimit    int       `json:"usage_limit,omitempty"`
}

// ToggleCouponRequest is the body of PATCH /admin/coupons/:id/active.
type ToggleCouponRequest struct {
	Active bool `json:"active"`
}

// CreatePayoutRequest is the body of POST /admin/payouts.
type CreatePayoutRequest struct {
	PartnerID uuid.UUID `json:"partner_id"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Method    string    `json:"method"`
}

// ProcessPayoutRequest is the body of PATCH /admin/payouts/:id.
type ProcessPayoutRequest struct {
	Status    string `json:"status"`
	Reference string `json:"reference,omitempty"`
}

// PayoutResponse is the representation of a payout.
type PayoutResponse struct {
	ID          uuid.UUID  `json:"id"`
	PartnerID   uuid.UUID  `json:"partner_id"`
	From        time.Time  `json:"from"`
	To          time.Time  `json:"to"`
	Amount      int        `json:"amount"`
	Orders      int        `json:"orders"`
	Method      string     `json:"method"`
	Status      string     `json:"status"`
	Reference   string     `json:"reference,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

func toPayoutResponse(p *payout.Payout) PayoutResponse {
	return PayoutResponse{
		ID:          p.ID().Bytes(),
		PartnerID:   p.PartnerID().Bytes(),
		From:        p.Period().From(),
		To:          p.Period().To(),
		Amount:      p.Amount(),
		Orders:      len(p.Entries()),
		Method:      p.Method().String(),
		Status:      p.Status().String(),
		Reference:   p.Reference(),
		CreatedAt:   p.CreatedAt(),
		ProcessedAt: p.ProcessedAt(),
	}
}
