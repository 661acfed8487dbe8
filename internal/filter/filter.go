package filter

import (
	"cmp"
	"slices"

	"github.com/dharmasatrya/travelnesia/internal/models"
	"github.com/dharmasatrya/travelnesia/internal/pricing"
)

type Priced interface {
	PriceAmount() int64
}

// Apply keeps the offers for which keep returns true, preserving order.
func Apply[T any](offers []T, keep func(T) bool) []T {
	result := make([]T, 0, len(offers))
	for _, o := range offers {
		if keep(o) {
			result = append(result, o)
		}
	}
	return result
}

// ByTrainType keeps trains of the given service type. An empty type keeps all.
func ByTrainType(trainType string) func(models.TrainOffer) bool {
	return func(o models.TrainOffer) bool {
		return trainType == "" || o.Type == trainType
	}
}

// ByPriceRange keeps hotels whose base nightly rate, before jitter, falls in
// the named bracket. An empty or unknown bracket keeps all.
func ByPriceRange(bracket string) func(models.HotelOffer) bool {
	return func(o models.HotelOffer) bool {
		return pricing.InPriceRange(o.BasePrice, bracket)
	}
}

// SortByPrice orders offers cheapest first. Equal prices keep their generation order.
func SortByPrice[T Priced](offers []T) []T {
	slices.SortStableFunc(offers, func(a, b T) int {
		return cmp.Compare(a.PriceAmount(), b.PriceAmount())
	})
	return offers
}
