package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"waterdrop/internal/core/domain/model/order"
	"waterdrop/internal/core/domain/model/partner"
	"waterdrop/internal/core/domain/services"
	"waterdrop/internal/core/ports"
)

// ErrPartnerInactive is returned when assigning work to a deactivated partner.
var ErrPartnerInactive = errors.New("delivery partner is not active")

// assignOrderToPartner is the single assignment path shared by the admin
// push, the partner's self-accept and the auto-assignment job. The aggregate
// enforces the at-most-once rule in memory; the repository's conditional
// Assign enforces it against concurrent requests, so exactly one of two
// simultaneous attempts commits and the other returns
// order.ErrOrderAlreadyAssigned.
func assignOrderToPartner(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	partnerRepo ports.PartnerRepository,
	o *order.Order,
	p *partner.DeliveryPartner,
	at time.Time,
) error {
	if !p.IsActive() {
		return ErrPartnerInactive
	}

	if err := o.Assign(p.ID(), services.NewPricer().PartnerEarning(), at); err != nil {
		return err
	}
	p.MarkBusy()

	if err := orderRepo.Assign(ctx, o); err != nil {
		return err
	}
	return partnerRepo.Update(ctx, p)
}

// notifyPartnerAssigned tells the partner about new work, best-effort.
func notifyPartnerAssigned(
	ctx context.Context,
	notifier ports.Notifier,
	logger *slog.Logger,
	o *order.Order,
	p *partner.DeliveryPartner,
) {
	if p.PushToken() == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	body := "Order " + o.Number().String() + " to " + o.Address()
	err := notifier.Notify(ctx, p.PushToken(), "New delivery assigned", body, map[string]string{
		"orderId": o.ID().String(),
	})
	if err != nil {
		logger.Warn("assignment notification failed",
			"orderId", o.ID().String(), "partnerId", p.ID().String(), "error", err)
	}
}
