package commands

import (
	"errors"

	"waterdrop/internal/pkg/guard"
)

var ErrAssignNextOrderCommandIsNotConstructed = errors.New(
	"AssignNextOrderCommand must be created via NewAssignNextOrderCommand constructor",
)

// AssignNextOrderCommand triggers one pass of automatic assignment: pick the
// oldest unassigned order and hand it to the least busy available partner.
// The command carries no data; it exists so the background job goes through
// the same validation discipline as every other write.
type AssignNextOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignNextOrderCommand creates a command for one auto-assignment pass.
func NewAssignNextOrderCommand() AssignNextOrderCommand {
	return AssignNextOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AssignNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignNextOrderCommandIsNotConstructed)
}
