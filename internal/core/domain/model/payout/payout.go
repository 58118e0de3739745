// Package payout contains settlement of delivery partner earnings.
//
// A payout bundles the earnings of a partner's delivered orders over a
// period into a single settlement that an administrator then processes
// through a payment channel.
package payout

import (
	"errors"
	"fmt"
	"time"

	"waterdrop/internal/core/domain/model/kernel"
	"waterdrop/internal/pkg/errs"
	"waterdrop/internal/pkg/guard"
)

// Status is the processing state of a payout.
type Status int

const (
	// UnknownStatus is the invalid zero value.
	UnknownStatus Status = iota
	// Pending means the payout was created but not yet picked up.
	Pending
	// Processing means the transfer is in flight.
	Processing
	// Completed means the partner has been paid.
	Completed
	// Failed means the transfer did not go through.
	Failed
)

// Method is the payment channel used to settle a payout.
type Method int

const (
	// UnknownMethod is the invalid zero value.
	UnknownMethod Method = iota
	// BankTransfer settles through a bank account.
	BankTransfer
	// UPI settles through a UPI handle.
	UPI
	// Cash settles in person.
	Cash
)

var (
	// ErrPayoutIsNotConstructed is returned when using an improperly initialized Payout.
	ErrPayoutIsNotConstructed = errors.New("Payout must be created via NewPayout constructor")
	// ErrNoEntries is returned when creating a payout with nothing to pay.
	ErrNoEntries = errors.New("payout must reference at least one delivered order")
	// ErrDuplicateOrder is returned when the same order appears twice in a payout.
	ErrDuplicateOrder = errors.New("payout references the same order more than once")
)

// String returns the human-readable payout status.
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Processing:
		return "Processing"
	case Completed:
		return "Completed"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	switch s {
	case Pending, Processing, Completed, Failed:
		return nil
	default:
		return errs.NewValueIsInvalidError("payout status")
	}
}

// String returns the human-readable payment method.
func (m Method) String() string {
	switch m {
	case BankTransfer:
		return "Bank Transfer"
	case UPI:
		return "UPI"
	case Cash:
		return "Cash"
	default:
		return "Unknown"
	}
}

// Validate checks that the method is one of the known values.
func (m Method) Validate() error {
	switch m {
	case BankTransfer, UPI, Cash:
		return nil
	default:
		return errs.NewValueIsInvalidError("payout method")
	}
}

// Entry references one delivered order and the earning it contributed.
type Entry struct {
	orderID kernel.UUID
	amount  int
}

// NewEntry creates a payout entry.
func NewEntry(orderID kernel.UUID, amount int) (Entry, error) {
	if err := orderID.Validate(); err != nil {
		return Entry{}, err
	}
	if amount < 0 {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Entry{orderID: orderID, amount: amount}, nil
}

// OrderID returns the delivered order this entry pays for.
func (e Entry) OrderID() kernel.UUID { return e.orderID }

// Amount returns the earning contributed by the order.
func (e Entry) Amount() int { return e.amount }

// Payout is the settlement aggregate.
//
// Business rules:
//   - The amount is the sum of entry amounts, fixed at creation
//   - Every entry references a distinct order
//   - Status is an administrator decision: any transition is permitted so a
//     failed transfer can be retried or corrected after the fact
//   - Completed and Failed stamp the processing time
type Payout struct {
	id          kernel.UUID
	partnerID   kernel.UUID
	period      kernel.Period
	entries     []Entry
	amount      int
	method      Method
	status      Status
	reference   string
	createdAt   time.Time
	processedAt *time.Time

	guard guard.ConstructorGuard
}

// NewPayout creates a pending payout covering the given entries.
func NewPayout(
	id kernel.UUID,
	partnerID kernel.UUID,
	period kernel.Period,
	entries []Entry,
	method Method,
	createdAt time.Time,
) (*Payout, error) {
	p := &Payout{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setPartnerID(partnerID),
		p.setPeriod(period),
		p.setEntries(entries),
		p.setMethod(method),
	); err != nil {
		return nil, err
	}

	p.status = Pending
	p.createdAt = createdAt

	return p, nil
}

// RestorePayout reconstructs a payout from persistent storage.
func RestorePayout(
	id kernel.UUID,
	partnerID kernel.UUID,
	period kernel.Period,
	entries []Entry,
	method Method,
	status Status,
	reference string,
	createdAt time.Time,
	processedAt *time.Time,
) (*Payout, error) {
	p := &Payout{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setPartnerID(partnerID),
		p.setPeriod(period),
		p.setEntries(entries),
		p.setMethod(method),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	p.status = status
	p.reference = reference
	p.createdAt = createdAt
	if processedAt != nil {
		at := *processedAt
		p.processedAt = &at
	}

	return p, nil
}

// Validate checks if the Payout was properly constructed.
func (p *Payout) Validate() error {
	if p == nil {
		return ErrPayoutIsNotConstructed
	}
	return p.guard.Validate(ErrPayoutIsNotConstructed)
}

// IsEqual compares two payouts by identity.
func (p *Payout) IsEqual(other *Payout) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Process records the administrator's decision on the payout. Any status may
// be set from any status; the reference is the external transaction ID and
// may be empty. Completed and Failed stamp the processing time.
func (p *Payout) Process(status Status, reference string, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	p.reference = reference
	if status == Completed || status == Failed {
		processedAt := at
		p.processedAt = &processedAt
	} else {
		p.processedAt = nil
	}
	return nil
}

// ID returns the payout identity.
func (p *Payout) ID() kernel.UUID { return p.id }

// PartnerID returns the partner being paid.
func (p *Payout) PartnerID() kernel.UUID { return p.partnerID }

// Period returns the delivery period the payout covers.
func (p *Payout) Period() kernel.Period { return p.period }

// Entries returns a copy of the per-order earnings.
func (p *Payout) Entries() []Entry { return append([]Entry(nil), p.entries...) }

// Amount returns the total settlement amount.
func (p *Payout) Amount() int { return p.amount }

// Method returns the payment channel.
func (p *Payout) Method() Method { return p.method }

// Status returns the processing state.
func (p *Payout) Status() Status { return p.status }

// Reference returns the external transaction reference, empty until set.
func (p *Payout) Reference() string { return p.reference }

// CreatedAt returns when the payout was created.
func (p *Payout) CreatedAt() time.Time { return p.createdAt }

// ProcessedAt returns when the payout reached Completed or Failed, nil before.
func (p *Payout) ProcessedAt() *time.Time {
	if p.processedAt == nil {
		return nil
	}
	at := *p.processedAt
	return &at
}

func (p *Payout) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Payout) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	p.partnerID = partnerID
	return nil
}

func (p *Payout) setPeriod(period kernel.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}

	p.period = period
	return nil
}

func (p *Payout) setEntries(entries []Entry) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}

	seen := make(map[kernel.UUID]struct{}, len(entries))
	total := 0
	for _, entry := range entries {
		if err := entry.orderID.Validate(); err != nil {
			return err
		}
		if _, ok := seen[entry.orderID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateOrder, entry.orderID)
		}
		seen[entry.orderID] = struct{}{}
		total += entry.amount
	}

	p.entries = append([]Entry(nil), entries...)
	p.amount = total
	return nil
}

func (p *Payout) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	p.method = method
	return nil
}
