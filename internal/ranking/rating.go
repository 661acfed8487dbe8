package ranking

import "math"

// Rand is the slice of a random source the ratings need.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

const (
	ratingPerStar = 1.8
	minRating     = 1.0
	maxRating     = 10.0
)

// HotelRating gives a guest score on a 10 point scale: 1.8 per star with up
// to half a point of noise either way, rounded to one decimal.
// 3 stars land around 5.4, 4 around 7.2, 5 around 9.0.
func HotelRating(rng Rand, star int) float64 {
	score := float64(star)*ratingPerStar + (rng.Float64()-0.5)*1.0
	score = math.Max(minRating, math.Min(maxRating, score))
	return math.Round(score*10) / 10
}

// ReviewCount is somewhere between 50 and 549.
func ReviewCount(rng Rand) int {
	return rng.IntN(500) + 50
}
