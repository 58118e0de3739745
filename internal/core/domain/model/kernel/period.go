package kernel

import (
	"fmt"
	"time"

	"waterdrop/internal/pkg/errs"
)

// Period is an inclusive [From, To] time range, used to scope payout
// computations and earnings summaries.
type Period struct {
	from time.Time
	to   time.Time
}

// NewPeriod creates a period. To must not precede From.
func NewPeriod(from, to time.Time) (Period, error) {
	if from.IsZero() || to.IsZero() {
		return Period{}, errs.NewValueIsRequiredError("period")
	}
	if to.Before(from) {
		return Period{}, errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("%s is before %s", to.Format(time.RFC3339), from.Format(time.RFC3339)))
	}
	return Period{from: from, to: to}, nil
}

// From returns the inclusive start of the period.
func (p Period) From() time.Time {
	return p.from
}

// To returns the inclusive end of the period.
func (p Period) To() time.Time {
	return p.to
}

// Contains reports whether t falls within the period, boundaries included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.from) && !t.After(p.to)
}

// Validate returns an error for the zero value.
func (p Period) Validate() error {
	if p.from.IsZero() || p.to.IsZero() {
		return errs.NewValueIsRequiredError("period must be created via NewPeriod")
	}
	return nil
}
