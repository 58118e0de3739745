package commands

import (
	"context"
	"log/slog"
	"time"

	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/core/ports"
)

// notifyTimeout bounds the post-commit notification and broadcast calls so a
// slow gateway cannot hold the request hostage.
const notifyTimeout = 3 * time.Second

// OrderStatusEvent is the payload broadcast to realtime subscribers when an
// order changes status.
type OrderStatusEvent struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
	At          string `json:"at"`
}

// ChangeOrderStatusCommandHandler moves orders along their lifecycle and
// performs the delivery side effects: crediting the partner, freeing them for
// the next order, and telling the customer what happened.
type ChangeOrderStatusCommandHandler struct {
	uowFactory  LifecycleUoWFactory
	notifier    ports.Notifier
	broadcaster ports.Broadcaster
	logger      *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory LifecycleUoWFactory,
	notifier ports.Notifier,
	broadcaster ports.Broadcaster,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		broadcaster: broadcaster,
		logger:      logger.With("component", "change_order_status"),
	}
}

// Handle processes the status change command.
//
// On Delivered, the order update and the partner counter credit commit in the
// same transaction, so a crash between them cannot pay a partner for an
// undelivered order or vice versa. Notification and broadcast run after the
// commit, best-effort: a dead push gateway must never roll back a delivery.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = o.TransitionTo(cmd.Next(), cmd.Note(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if o.Partner() != nil {
		switch cmd.Next() {
		case order.Delivered:
			if err = partnerRepo.IncrementDeliveryStats(ctx, *o.Partner(), o.PartnerEarning()); err != nil {
				return err
			}
		case order.Cancelled:
			if err = partnerRepo.SetAvailability(ctx, *o.Partner(), true); err != nil {
				return err
			}
		}
	}

	customerToken, err := h.customerToken(ctx, uow.UserRepository(), o)
	if err != nil {
		h.logger.Warn("customer lookup for notification failed",
			"orderId", o.ID().String(), "error", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.announce(ctx, o, customerToken)
	return nil
}

func (h ChangeOrderStatusCommandHandler) customerToken(
	ctx context.Context,
	users ports.UserRepository,
	o *order.Order,
) (string, error) {
	customer, err := users.Get(ctx, o.CustomerID())
	if err != nil {
		return "", err
	}
	return customer.PushToken(), nil
}

// announce tells the customer about the change over push and realtime
// channels. Failures are logged and swallowed.
func (h ChangeOrderStatusCommandHandler) announce(ctx context.Context, o *order.Order, customerToken string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	event := OrderStatusEvent{
		OrderID:     o.ID().String(),
		OrderNumber: o.Number().String(),
		Status:      o.Status().String(),
		At:          time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.broadcaster.Publish(ctx, OrderChannel(o.ID().String()), event); err != nil {
		h.logger.Warn("status broadcast failed", "orderId", event.OrderID, "error", err)
	}

	if customerToken == "" {
		return
	}
	body := "Your order " + event.OrderNumber + " is now " + event.Status
	err := h.notifier.Notify(ctx, customerToken, "Order update", body, map[string]string{
		"orderId": event.OrderID,
		"status":  event.Status,
	})
	if err != nil {
		h.logger.Warn("status notification failed", "orderId", event.OrderID, "error", err)
	}
}

// OrderChannel returns the realtime channel name for one order's events.
func OrderChannel(orderID string) string {
	return "order:" + orderID
}
