package commands

import (
	"errors"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/payout"
	"waterdrop/internal/pkg/guard"
)

var ErrCreatePayoutCommandIsNotConstructed = errors.New(
	"CreatePayoutCommand must be created via NewCreatePayoutCommand constructor",
)

// CreatePayoutCommand represents an administrator settling a partner's
// earnings for a delivery period.
type CreatePayoutCommand struct { //nolint:recvcheck //using for validation
	payoutID  kernel.UUID
	partnerID kernel.UUID
	period    kernel.Period
	method    payout.Method

	guard guard.ConstructorGuard
}

// NewCreatePayoutCommand creates a command to build a payout covering orders
// delivered between from and to, bounds inclusive.
func NewCreatePayoutCommand(
	payoutID kernel.UUID,
	partnerID kernel.UUID,
	from time.Time,
	to time.Time,
	method payout.Method,
) (CreatePayoutCommand, error) {
	cmd := CreatePayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	period, err := kernel.NewPeriod(from, to)
	if err != nil {
		return CreatePayoutCommand{}, err
	}

	if err := errors.Join(
		cmd.setPayoutID(payoutID),
		cmd.setPartnerID(partnerID),
		cmd.setMethod(method),
	); err != nil {
		return CreatePayoutCommand{}, err
	}

	cmd.period = period

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePayoutCommand) Validate() error {
	return c.guard.Validate(ErrCreatePayoutCommandIsNotConstructed)
}

// PayoutID returns the identity the new payout will carry.
func (c CreatePayoutCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

// PartnerID returns the partner being paid.
func (c CreatePayoutCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Period returns the delivery period the payout covers.
func (c CreatePayoutCommand) Period() kernel.Period {
	return c.period
}

// Method returns the payment channel.
func (c CreatePayoutCommand) Method() payout.Method {
	return c.method
}

func (c *CreatePayoutCommand) setPayoutID(payoutID kernel.UUID) error {
	if err := payoutID.Validate(); err != nil {
		return err
	}

	c.payoutID = payoutID
	return nil
}

func (c *CreatePayoutCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *CreatePayoutCommand) setMethod(method payout.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
