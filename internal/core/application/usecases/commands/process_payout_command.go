package commands

import (
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/core/domain/model/payout"
	"waterdrop/internal/pkg/guard"
)

var ErrProcessPayoutCommandIsNotConstructed = errors.New(
	"ProcessPayoutCommand must be created via NewProcessPayoutCommand constructor",
)

// ProcessPayoutCommand represents an administrator recording the outcome of
// a payout transfer. The reference is the external transaction ID and may be
// empty.
type ProcessPayoutCommand struct { //nolint:recvcheck //using for validation
	payoutID  kernel.UUID
	status    payout.Status
	reference string

	guard guard.ConstructorGuard
}

// NewProcessPayoutCommand creates a command to set a payout's status.
func NewProcessPayoutCommand(payoutID kernel.UUID, status payout.Status, reference string) (ProcessPayoutCommand, error) {
	cmd := ProcessPayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPayoutID(payoutID),
		cmd.setStatus(status),
	); err != nil {
		return ProcessPayoutCommand{}, err
	}

	cmd.reference = reference

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPayoutCommand) Validate() error {
	return c.guard.Validate(ErrProcessPayoutCommandIsNotConstructed)
}

// PayoutID returns the payout being processed.
func (c ProcessPayoutCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

// Status returns the status the administrator is setting.
func (c ProcessPayoutCommand) Status() payout.Status {
	return c.status
}

// Reference returns the external transaction reference.
func (c ProcessPayoutCommand) Reference() string {
	return c.reference
}

func (c *ProcessPayoutCommand) setPayoutID(payoutID kernel.UUID) error {
	if err := payoutID.Validate(); err != nil {
		return err
	}

	c.payoutID = payoutID
	return nil
}

func (c *ProcessPayoutCommand) setStatus(status payout.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
