package order

import (
	"fmt"

	"waterdrop/internal/pkg/errs"
)

// PaymentMethod identifies how the customer settles the order.
type PaymentMethod int

const (
	// PaymentMethodUnknown catches uninitialized values.
	PaymentMethodUnknown PaymentMethod = iota

	// CashOnDelivery settles in cash when the order is delivered.
	CashOnDelivery

	// Online settles through the online payment provider at checkout.
	Online
)

// String returns the human-readable payment method name.
func (m PaymentMethod) String() string {
	switch m {
	case CashOnDelivery:
		return "Cash on Delivery"
	case Online:
		return "Online"
	default:
		return "Unknown"
	}
}

// Validate rejects values outside the defined payment methods.
func (m PaymentMethod) Validate() error {
	if m != CashOnDelivery && m != Online {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// PaymentStatus tracks settlement of the order amount.
type PaymentStatus int

const (
	// PaymentStatusUnknown catches uninitialized values.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means the amount has not been collected yet. Cash
	// orders stay pending until delivery.
	PaymentPending

	// PaymentPaid means the amount has been collected.
	PaymentPaid

	// PaymentFailed means an online payment attempt failed.
	PaymentFailed

	// PaymentRefunded means a collected amount was returned to the customer.
	PaymentRefunded
)

// String returns the human-readable payment status name.
func (s PaymentStatus) String() string {
	switch s {
	case PaymentPending:
		return "Pending"
	case PaymentPaid:
		return "Paid"
	case PaymentFailed:
		return "Failed"
	case PaymentRefunded:
		return "Refunded"
	default:
		return "Unknown"
	}
}

// Validate rejects values outside the defined payment statuses.
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
}
