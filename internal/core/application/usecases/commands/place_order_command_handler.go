package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/core/domain/services"
	"waterdrop/internal/core/ports"
	"waterdrop/internal/pkg/errs"
)

// maxOrderNumberAttempts bounds regeneration when a generated order number
// collides with an existing one.
const maxOrderNumberAttempts = 5

var (
	// ErrProductUnavailable is returned when a requested product is off the menu.
	ErrProductUnavailable = errors.New("product is not available")
	// ErrOrderNumberExhausted is returned when number generation keeps colliding.
	ErrOrderNumberExhausted = errors.New("could not generate a unique order number")
)

// PlaceOrderCommandHandler handles the business logic for order placement:
// catalog validation, price snapshotting, the delivery fee rule, coupon
// redemption and unique order number generation.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	payments   ports.PaymentProvider
	pricer     services.Pricer
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	payments ports.PaymentProvider,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
		pricer:     services.NewPricer(),
		logger:     logger.With("component", "place_order"),
	}
}

// Handle processes the placement command and returns the placed order.
//
// Prices are snapshotted from the catalog at handling time, so later catalog
// edits never change this order. A failing coupon fails the placement; the
// customer should see why their discount did not apply rather than silently
// paying full price.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := h.snapshotItems(ctx, uow.ProductRepository(), cmd.Items())
	if err != nil {
		return nil, err
	}

	subtotal := 0
	for _, item := range items {
		subtotal += item.Subtotal()
	}
	deliveryFee := h.pricer.DeliveryFee(subtotal)

	now := time.Now()
	discount := 0
	if cmd.CouponCode() != "" {
		discount, err = h.redeemCoupon(ctx, uow.CouponRepository(), cmd.CouponCode(), subtotal, now)
		if err != nil {
			return nil, err
		}
	}

	placed, err := h.addWithFreshNumber(ctx, uow.OrderRepository(), cmd, items, deliveryFee, discount, now)
	if err != nil {
		return nil, err
	}

	if cmd.PaymentMethod() == order.CashOnDelivery {
		if err = h.payments.AcknowledgeCashOnDelivery(ctx, placed.ID().String(), placed.Total()); err != nil {
			h.logger.Warn("cash on delivery acknowledgment failed",
				"orderId", placed.ID().String(), "error", err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

func (h PlaceOrderCommandHandler) snapshotItems(
	ctx context.Context,
	products ports.ProductRepository,
	requests []ItemRequest,
) ([]order.Item, error) {
	items := make([]order.Item, 0, len(requests))
	for _, request := range requests {
		p, err := products.Get(ctx, request.ProductID)
		if err != nil {
			return nil, err
		}
		if !p.IsAvailable() {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, p.Name())
		}

		item, err := order.NewItem(p.ID(), p.Name(), p.Size(), request.Quantity, p.EffectivePrice())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (h PlaceOrderCommandHandler) redeemCoupon(
	ctx context.Context,
	coupons ports.CouponRepository,
	code string,
	orderValue int,
	now time.Time,
) (int, error) {
	c, err := coupons.GetByCode(ctx, code)
	if err != nil {
		return 0, err
	}

	discount, err := c.Evaluate(orderValue, now)
	if err != nil {
		return 0, err
	}

	if err = coupons.IncrementUsage(ctx, c.ID()); err != nil {
		return 0, err
	}
	return discount, nil
}

// addWithFreshNumber persists the order, regenerating the order number when
// the previous one lost a uniqueness race.
func (h PlaceOrderCommandHandler) addWithFreshNumber(
	ctx context.Context,
	orders ports.OrderRepository,
	cmd PlaceOrderCommand,
	items []order.Item,
	deliveryFee int,
	discount int,
	placedAt time.Time,
) (*order.Order, error) {
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		placed, err := order.NewOrder(
			cmd.OrderID(),
			kernel.NewOrderNumber(placedAt),
			cmd.CustomerID(),
			items,
			cmd.Address(),
			cmd.PaymentMethod(),
			deliveryFee,
			discount,
			cmd.CouponCode(),
			placedAt,
		)
		if err != nil {
			return nil, err
		}

		err = orders.Add(ctx, placed)
		if err == nil {
			return placed, nil
		}
		if !errors.Is(err, errs.ErrConstraintViolation) {
			return nil, err
		}

		h.logger.Info("order number collision, regenerating",
			"orderNumber", placed.Number().String(), "attempt", attempt+1)
	}

	return nil, ErrOrderNumberExhausted
}
