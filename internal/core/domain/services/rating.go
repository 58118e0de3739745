package services

import "math"

// RatingAggregator folds individual order ratings into the single score shown
// on a partner's profile.
type RatingAggregator struct{}

// NewRatingAggregator creates a new RatingAggregator instance.
func NewRatingAggregator() RatingAggregator {
	return RatingAggregator{}
}

// Aggregate returns the mean of the given rating values rounded to one
// decimal place. An empty input yields 0, the unrated score.
func (RatingAggregator) Aggregate(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	avg := float64(sum) / float64(len(values))
	return math.Round(avg*10) / 10
}
