package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedFloat float64

func (f fixedFloat) Float64() float64 { return float64(f) }

func TestFlightBasePrice(t *testing.T) {
	assert.Equal(t, int64(1200000), FlightBasePrice("CGK", "DPS", "economy"))
	assert.Equal(t, int64(3000000), FlightBasePrice("CGK", "DPS", "business"))
	assert.Equal(t, int64(4800000), FlightBasePrice("CGK", "DPS", "first"))
}

func TestBasePrice_Symmetric(t *testing.T) {
	for key := range FlightPrices.entries {
		from, to := split(key)
		for _, class := range []string{"economy", "business", "first"} {
			assert.Equal(t, FlightBasePrice(from, to, class), FlightBasePrice(to, from, class), key)
		}
	}
	for key := range TrainPrices.entries {
		from, to := split(key)
		for _, class := range []string{"ekonomi", "bisnis", "eksekutif"} {
			assert.Equal(t, TrainBasePrice(from, to, class), TrainBasePrice(to, from, class), key)
		}
	}
	for key := range ShipPrices.entries {
		from, to := split(key)
		for _, class := range []string{"ekonomi", "kelas2", "kelas1", "vip"} {
			assert.Equal(t, ShipBasePrice(from, to, class), ShipBasePrice(to, from, class), key)
		}
	}
}

func TestDurations_Symmetric(t *testing.T) {
	assert.Equal(t, 150, FlightMinutes("DPS", "CGK"))
	assert.Equal(t, 195, TrainMinutes("BD", "GMR"))
	assert.Equal(t, 30*60, ShipMinutes("JYP", "AMB"))
}

func TestBasePrice_Defaults(t *testing.T) {
	assert.Equal(t, DefaultFlightPrice, FlightBasePrice("PLM", "UPG", "economy"))
	assert.Equal(t, int64(2000000), FlightBasePrice("PLM", "UPG", "business"))
	assert.Equal(t, DefaultTrainPrice, TrainBasePrice("SMG", "PWK", "ekonomi"))
	assert.Equal(t, int64(180000), TrainBasePrice("SMG", "PWK", "eksekutif"))
	assert.Equal(t, DefaultShipPrice, ShipBasePrice("BTM", "PLB", "ekonomi"))
	assert.Equal(t, int64(1500000), ShipBasePrice("BTM", "PLB", "vip"))

	assert.Equal(t, DefaultFlightMinutes, FlightMinutes("PLM", "UPG"))
	assert.Equal(t, DefaultTrainMinutes, TrainMinutes("SMG", "PWK"))
	assert.Equal(t, DefaultShipMinutes, ShipMinutes("BTM", "PLB"))
}

func TestRouteTable_Lookup(t *testing.T) {
	assert.Equal(t, int64(40000), TrainPrices.Lookup("SLO", "YK"))
	assert.Equal(t, int64(40000), TrainPrices.Lookup("YK", "SLO"))
	assert.Equal(t, DefaultTrainPrice, TrainPrices.Lookup("SLO", "KA"))
}

func TestHotelBasePrice(t *testing.T) {
	assert.Equal(t, int64(1200000), HotelBasePrice("bali", 5))
	assert.Equal(t, int64(200000), HotelBasePrice("yogyakarta", 3))
	assert.Equal(t, int64(800000), HotelBasePrice("medan", 4))
	assert.Equal(t, DefaultHotelPrice, HotelBasePrice("bali", 2))
}

func TestRound(t *testing.T) {
	assert.Equal(t, int64(1210000), Round(1205000, 10000))
	assert.Equal(t, int64(1200000), Round(1204999, 10000))
	assert.Equal(t, int64(95000), Round(92500, 5000))
	assert.Equal(t, int64(90000), Round(92499, 5000))
}

func TestJitter(t *testing.T) {
	// Float64 = 0 sits at the low edge of the band, 0.5 in the middle.
	assert.Equal(t, int64(950000), Jitter(fixedFloat(0), 1200000, FlightBand, FlightGranularity))
	assert.Equal(t, int64(1200000), Jitter(fixedFloat(0.5), 1200000, FlightBand, FlightGranularity))
	assert.Equal(t, int64(1450000), Jitter(fixedFloat(0.99999999), 1200000, FlightBand, FlightGranularity))

	for _, f := range []float64{0, 0.13, 0.5, 0.77, 0.999} {
		price := Jitter(fixedFloat(f), 1200000, FlightBand, FlightGranularity)
		assert.Zero(t, price%FlightGranularity)
		assert.GreaterOrEqual(t, price, int64(950000))
		assert.LessOrEqual(t, price, int64(1450000))
	}
}

func TestJitter_NeverBelowOneStep(t *testing.T) {
	assert.Equal(t, TrainGranularity, Jitter(fixedFloat(0), 60000, TrainBand, TrainGranularity))
}

func TestVehicleFee(t *testing.T) {
	assert.Equal(t, int64(50000), VehicleFee("motor"))
	assert.Equal(t, int64(200000), VehicleFee("mobil"))
	assert.Equal(t, int64(500000), VehicleFee("truck"))
	assert.Zero(t, VehicleFee("no"))
	assert.Zero(t, VehicleFee("sepeda"))
}

func TestInPriceRange(t *testing.T) {
	tests := []struct {
		price   int64
		bracket string
		want    bool
	}{
		{499999, RangeBudget, true},
		{500000, RangeBudget, false},
		{500000, RangeMid, true},
		{1500000, RangeMid, true},
		{1500001, RangeMid, false},
		{1500000, RangeLuxury, true},
		{3000000, RangeLuxury, true},
		{3000000, RangePremium, false},
		{3000001, RangePremium, true},
		{1200000, RangeBudget, false},
		{1, "", true},
		{1, "unknown", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InPriceRange(tt.price, tt.bracket), "%d %s", tt.price, tt.bracket)
	}
}

func split(key string) (string, string) {
	from, to, _ := strings.Cut(key, "-")
	return from, to
}
