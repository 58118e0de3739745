package order

import (
	"errors"
	"fmt"

	"waterdrop/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a requested status change is not
// reachable from the order's current status.
var ErrInvalidTransition = errors.New("status transition is not permitted")

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders always follow the business
// workflow: the linear happy path Placed through Delivered, with Cancelled
// reachable from any non-terminal state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned at checkout.
	Placed

	// Accepted indicates a delivery partner has been assigned to the order.
	Accepted

	// Preparing indicates the order is being prepared for dispatch.
	Preparing

	// OutForDelivery indicates the assigned partner is en route.
	OutForDelivery

	// Delivered is a terminal status: the order reached the customer.
	Delivered

	// Cancelled is a terminal status reachable from any non-terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Placed:         "Placed",
		Accepted:       "Accepted",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "Placed",
		Accepted:       "Accepted",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// nextStatuses is the authoritative transition table. A status not present,
// or a target not listed for it, is an invalid transition.
func nextStatuses() map[Status][]Status {
	return map[Status][]Status{
		Placed:         {Accepted, Cancelled},
		Accepted:       {Preparing, Cancelled},
		Preparing:      {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
	}
}

// Validate checks that the Status value is one of the defined states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are permitted from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo checks whether the transition from s to next is permitted
// without performing it. Returns ErrInvalidTransition (wrapped with both
// statuses) when the transition is not in the table.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	for _, allowed := range nextStatuses()[s] {
		if allowed == next {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
}

// TransitionTo returns next if the transition is permitted from s.
//
// Permitted transitions:
//   - Placed -> Accepted
//   - Accepted -> Preparing
//   - Preparing -> OutForDelivery
//   - OutForDelivery -> Delivered
//   - any non-terminal -> Cancelled
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.CanTransitionTo(next); err != nil {
		return Unknown, err
	}
	return next, nil
}
