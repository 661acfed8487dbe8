package pricing

import "math"

// Float64er is the slice of a random source Jitter needs.
type Float64er interface {
	Float64() float64
}

func applyMultiplier(base int64, multipliers map[string]float64, class string) int64 {
	m, ok := multipliers[class]
	if !ok {
		return base
	}
	return int64(math.Round(float64(base) * m))
}

func FlightBasePrice(from, to, class string) int64 {
	return applyMultiplier(FlightPrices.Lookup(from, to), flightClassMultiplier, class)
}

func TrainBasePrice(from, to, class string) int64 {
	return applyMultiplier(TrainPrices.Lookup(from, to), trainClassMultiplier, class)
}

func ShipBasePrice(from, to, class string) int64 {
	return applyMultiplier(ShipPrices.Lookup(from, to), shipClassMultiplier, class)
}

// HotelBasePrice is the nightly rate for a star tier. Unknown cities price like Jakarta.
func HotelBasePrice(city string, star int) int64 {
	prices, ok := hotelPrices[city]
	if !ok {
		prices = hotelPrices[fallbackHotelCity]
	}
	if p, ok := prices[star]; ok {
		return p
	}
	return DefaultHotelPrice
}

func FlightMinutes(from, to string) int { return FlightDurations.Lookup(from, to) }
func TrainMinutes(from, to string) int  { return TrainDurations.Lookup(from, to) }
func ShipMinutes(from, to string) int   { return ShipDurations.Lookup(from, to) }

// Round rounds to the nearest multiple of granularity, halves going up.
func Round(price float64, granularity int64) int64 {
	g := float64(granularity)
	return int64(math.Floor(price/g+0.5)) * granularity
}

// Jitter offsets base uniformly within [-band, +band) and rounds the result.
// The result never drops below one granularity step.
func Jitter(rng Float64er, base, band, granularity int64) int64 {
	price := float64(base) + rng.Float64()*float64(2*band) - float64(band)
	rounded := Round(price, granularity)
	if rounded < granularity {
		return granularity
	}
	return rounded
}

func VehicleFee(vehicle string) int64 {
	return vehicleFees[vehicle]
}

// Hotel price brackets as offered in the search form.
const (
	RangeBudget  = "budget"
	RangeMid     = "mid"
	RangeLuxury  = "luxury"
	RangePremium = "premium"
)

// InPriceRange reports whether a nightly price sits in the named bracket.
// An empty or unknown bracket accepts everything.
func InPriceRange(price int64, bracket string) bool {
	switch bracket {
	case RangeBudget:
		return price < 500000
	case RangeMid:
		return price >= 500000 && price <= 1500000
	case RangeLuxury:
		return price >= 1500000 && price <= 3000000
	case RangePremium:
		return price > 3000000
	default:
		return true
	}
}
