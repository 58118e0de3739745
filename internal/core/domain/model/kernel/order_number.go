package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"waterdrop/internal/pkg/errs"
)

const orderNumberPrefix = "WD"

// ErrOrderNumberIsRequired indicates an empty or malformed order number.
var ErrOrderNumberIsRequired = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or OrderNumberFromString")

// OrderNumber is the human-readable unique token identifying an order,
// assigned once at placement and immutable afterwards. The format is an
// implementation detail; only global uniqueness is contractual, which the
// store enforces with a unique index. Callers regenerate and retry on a
// uniqueness conflict.
type OrderNumber struct {
	value string
}

// NewOrderNumber generates a fresh order number for the given placement time,
// e.g. "WD-20260828-K3F7QD". The random suffix keeps collisions rare; the
// store's unique constraint makes them harmless.
func NewOrderNumber(placedAt time.Time) OrderNumber {
	const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return OrderNumber{
		value: fmt.Sprintf("%s-%s-%s", orderNumberPrefix, placedAt.Format("20060102"), suffix),
	}
}

// OrderNumberFromString reconstructs an order number from persistence.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if strings.TrimSpace(s) == "" {
		return OrderNumber{}, ErrOrderNumberIsRequired
	}
	return OrderNumber{value: s}, nil
}

// String returns the order number token.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate returns ErrOrderNumberIsRequired for the zero value.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsRequired
	}
	return nil
}
