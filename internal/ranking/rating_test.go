package ranking

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubRand struct {
	f float64
	n int
}

func (s stubRand) Float64() float64 { return s.f }
func (s stubRand) IntN(n int) int   { return s.n % n }

func TestHotelRating(t *testing.T) {
	assert.Equal(t, 9.0, HotelRating(stubRand{f: 0.5}, 5))
	assert.Equal(t, 5.4, HotelRating(stubRand{f: 0.5}, 3))
	assert.Equal(t, 6.7, HotelRating(stubRand{f: 0}, 4))
	assert.Equal(t, 9.5, HotelRating(stubRand{f: 0.999}, 5))
}

func TestHotelRating_Clamped(t *testing.T) {
	assert.Equal(t, 10.0, HotelRating(stubRand{f: 0.999}, 6))
	assert.Equal(t, 1.0, HotelRating(stubRand{f: 0}, 0))
}

func TestHotelRating_Bounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 1000; i++ {
		star := 3 + i%3
		r := HotelRating(rng, star)
		assert.GreaterOrEqual(t, r, float64(star)*1.8-0.5)
		assert.LessOrEqual(t, r, float64(star)*1.8+0.5)
		assert.InDelta(t, r, float64(int(r*10+0.5))/10, 1e-9)
	}
}

func TestReviewCount(t *testing.T) {
	assert.Equal(t, 50, ReviewCount(stubRand{n: 0}))
	assert.Equal(t, 549, ReviewCount(stubRand{n: 499}))
}
