package pricing

const (
	DefaultFlightPrice int64 = 800000
	DefaultHotelPrice  int64 = 500000
	DefaultTrainPrice  int64 = 90000
	DefaultShipPrice   int64 = 500000

	DefaultFlightMinutes = 120
	DefaultTrainMinutes  = 360
	DefaultShipMinutes   = 24 * 60
)

var FlightPrices = NewRouteTable(DefaultFlightPrice, map[string]int64{
	"CGK-SUB": 600000,
	"CGK-DPS": 1200000,
	"CGK-MDN": 1500000,
	"CGK-BDO": 300000,
	"SUB-DPS": 800000,
	"DPS-MDN": 2000000,
})

var FlightDurations = NewRouteTable(DefaultFlightMinutes, map[string]int{
	"CGK-SUB": 75,
	"CGK-DPS": 150,
	"CGK-MDN": 165,
	"CGK-BDO": 45,
	"SUB-DPS": 105,
	"DPS-MDN": 255,
})

var TrainPrices = NewRouteTable(DefaultTrainPrice, map[string]int64{
	"GMR-SGU": 120000,
	"GMR-YK":  100000,
	"GMR-BD":  60000,
	"GMR-SLO": 110000,
	"SGU-YK":  80000,
	"YK-SLO":  40000,
})

var TrainDurations = NewRouteTable(DefaultTrainMinutes, map[string]int{
	"GMR-SGU": 510,
	"GMR-YK":  465,
	"GMR-BD":  195,
	"GMR-SLO": 420,
	"SGU-YK":  330,
	"YK-SLO":  135,
})

var ShipPrices = NewRouteTable(DefaultShipPrice, map[string]int64{
	"TNJ-SBY": 200000,
	"TNJ-DPS": 400000,
	"TNJ-MKS": 800000,
	"TNJ-AMB": 1200000,
	"SBY-DPS": 300000,
	"DPS-MKS": 600000,
	"MKS-AMB": 700000,
	"AMB-JYP": 900000,
})

var ShipDurations = NewRouteTable(DefaultShipMinutes, map[string]int{
	"TNJ-SBY": 18 * 60,
	"TNJ-DPS": 24 * 60,
	"TNJ-MKS": 36 * 60,
	"TNJ-AMB": 48 * 60,
	"SBY-DPS": 12 * 60,
	"DPS-MKS": 20 * 60,
	"MKS-AMB": 24 * 60,
	"AMB-JYP": 30 * 60,
})

// Class multipliers. Classes not listed price at x1.
var (
	flightClassMultiplier = map[string]float64{"business": 2.5, "first": 4}
	trainClassMultiplier  = map[string]float64{"eksekutif": 2, "bisnis": 1.5}
	shipClassMultiplier   = map[string]float64{"vip": 3, "kelas1": 2, "kelas2": 1.5}
)

const fallbackHotelCity = "jakarta"

var hotelPrices = map[string]map[int]int64{
	"jakarta":    {3: 400000, 4: 800000, 5: 1500000},
	"bali":       {3: 350000, 4: 700000, 5: 1200000},
	"surabaya":   {3: 300000, 4: 600000, 5: 1000000},
	"bandung":    {3: 250000, 4: 500000, 5: 900000},
	"yogyakarta": {3: 200000, 4: 400000, 5: 800000},
}

var vehicleFees = map[string]int64{
	"motor": 50000,
	"mobil": 200000,
	"truck": 500000,
}

// Jitter bands (half-width) and rounding granularity per mode.
const (
	FlightBand int64 = 250000
	HotelBand  int64 = 50000
	TrainBand  int64 = 100000
	ShipBand   int64 = 150000

	FlightGranularity int64 = 10000
	HotelGranularity  int64 = 10000
	TrainGranularity  int64 = 5000
	ShipGranularity   int64 = 10000
)
