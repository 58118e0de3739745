package order

import "waterdrop/internal/pkg/errs"

const (
	// MinRating is the lowest rating a customer can give.
	MinRating = 1
	// MaxRating is the highest rating a customer can give.
	MaxRating = 5
)

// Rating is the customer's post-delivery feedback: a 1-5 score with optional
// free-form text.
type Rating struct {
	value    int
	feedback string
}

// NewRating creates a validated rating.
func NewRating(value int, feedback string) (Rating, error) {
	if value < MinRating || value > MaxRating {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating", value, MinRating, MaxRating)
	}
	return Rating{value: value, feedback: feedback}, nil
}

// Value returns the 1-5 score.
func (r Rating) Value() int {
	return r.value
}

// Feedback returns the optional feedback text.
func (r Rating) Feedback() string {
	return r.feedback
}
