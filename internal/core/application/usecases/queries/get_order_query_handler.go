package queries

import (
	"context"
	"database/sql"
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order detail from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with its items and status timeline.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp, err := h.scanOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if resp.Items, err = h.scanItems(ctx, query.OrderID()); err != nil {
		return nil, err
	}
	if resp.History, err = h.scanHistory(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) scanOrder(ctx context.Context, orderID kernel.UUID) (*GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			delivery_partner_id,
			address,
			subtotal,
			delivery_fee,
			discount,
			total,
			coupon_code,
			payment_method,
			payment_status,
			status,
			rating_value,
			rating_feedback,
			placed_at,
			delivered_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var customerID uuid.UUID
	var partnerID *uuid.UUID
	var paymentMethod, paymentStatus, status int
	var ratingValue sql.NullInt64
	var deliveredAt sql.NullTime

	err := row.Scan(
		&id,
		&resp.Number,
		&customerID,
		&partnerID,
		&resp.Address,
		&resp.Subtotal,
		&resp.DeliveryFee,
		&resp.Discount,
		&resp.Total,
		&resp.CouponCode,
		&paymentMethod,
		&paymentStatus,
		&status,
		&ratingValue,
		&resp.RatingFeedback,
		&resp.PlacedAt,
		&deliveredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return nil, err
	}
	if partnerID != nil {
		pid, pErr := kernel.UUIDFromBytes((*partnerID)[:])
		if pErr != nil {
			return nil, pErr
		}
		resp.PartnerID = &pid
	}

	resp.PaymentMethod = order.PaymentMethod(paymentMethod).String()
	resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()
	resp.Status = order.Status(status).String()
	if ratingValue.Valid {
		resp.RatingValue = int(ratingValue.Int64)
	}
	if deliveredAt.Valid {
		at := deliveredAt.Time
		resp.DeliveredAt = &at
	}

	return &resp, nil
}

func (h GetOrderQueryHandler) scanItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderQueryItem, error) {
	items := make([]GetOrderQueryItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			size,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryItem
		var productID uuid.UUID

		err = rows.Scan(&productID, &item.Name, &item.Size, &item.Quantity, &item.UnitPrice)
		if err != nil {
			return nil, err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) scanHistory(ctx context.Context, orderID kernel.UUID) ([]GetOrderQueryEvent, error) {
	events := make([]GetOrderQueryEvent, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			at,
			note
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetOrderQueryEvent
		var status int

		err = rows.Scan(&status, &event.At, &event.Note)
		if err != nil {
			return nil, err
		}

		event.Status = order.Status(status).String()
		events = append(events, event)
	}

	return events, rows.Err()
}
