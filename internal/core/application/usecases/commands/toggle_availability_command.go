package commands

import (
	"errors"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/guard"
)

var ErrToggleAvailabilityCommandIsNotConstructed = errors.New(
	"ToggleAvailabilityCommand must be created via NewToggleAvailabilityCommand constructor",
)

// ToggleAvailabilityCommand represents a partner going on or off duty.
type ToggleAvailabilityCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewToggleAvailabilityCommand creates a command to flip a partner's
// availability.
func NewToggleAvailabilityCommand(partnerID kernel.UUID, available bool) (ToggleAvailabilityCommand, error) {
	cmd := ToggleAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return ToggleAvailabilityCommand{}, err
	}

	cmd.available = available

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrToggleAvailabilityCommandIsNotConstructed)
}

// PartnerID returns the partner flipping their availability.
func (c ToggleAvailabilityCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Available returns the requested availability state.
func (c ToggleAvailabilityCommand) Available() bool {
	return c.available
}

func (c *ToggleAvailabilityCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}
