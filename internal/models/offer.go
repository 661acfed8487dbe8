package models

import "github.com/dharmasatrya/travelnesia/pkg/currency"

type Mode string

const (
	ModeFlight Mode = "flight"
	ModeHotel  Mode = "hotel"
	ModeTrain  Mode = "train"
	ModeShip   Mode = "ship"
)

var Modes = []Mode{ModeFlight, ModeHotel, ModeTrain, ModeShip}

func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

type Price struct {
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

func NewPrice(amount int64) Price {
	return Price{
		Amount:    amount,
		Currency:  currency.Code,
		Formatted: currency.FormatIDR(amount),
	}
}

type Duration struct {
	Hours        int    `json:"hours"`
	Minutes      int    `json:"minutes"`
	TotalMinutes int    `json:"total_minutes"`
	Label        string `json:"label"`
}

type Location struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

type Carrier struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Leg is the timing shared by every point-to-point offer.
type Leg struct {
	From      Location `json:"from"`
	To        Location `json:"to"`
	Departure string   `json:"departure"`
	Arrival   string   `json:"arrival"`
	DayOffset int      `json:"day_offset"`
	Duration  Duration `json:"duration"`
}

type FlightOffer struct {
	ID           string  `json:"id"`
	Airline      Carrier `json:"airline"`
	FlightNumber string  `json:"flight_number"`
	Leg
	Price Price  `json:"price"`
	Class string `json:"class"`
	Seats int    `json:"seats"`
	Stops int    `json:"stops"`
}

func (o FlightOffer) PriceAmount() int64 { return o.Price.Amount }

type HotelOffer struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Chain         string   `json:"chain"`
	Type          string   `json:"type"`
	Star          int      `json:"star"`
	Area          string   `json:"area"`
	City          string   `json:"city"`
	BasePrice     int64    `json:"base_price"`
	PricePerNight Price    `json:"price_per_night"`
	TotalPrice    Price    `json:"total_price"`
	Nights        int      `json:"nights"`
	Rooms         int      `json:"rooms"`
	RoomsLeft     int      `json:"rooms_left"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Amenities     []string `json:"amenities"`
	Image         string   `json:"image"`
	DistanceKm    float64  `json:"distance_km"`
	WiFi          bool     `json:"wifi"`
	Breakfast     bool     `json:"breakfast"`
	Pool          bool     `json:"pool"`
	Gym           bool     `json:"gym"`
}

func (o HotelOffer) PriceAmount() int64 { return o.PricePerNight.Amount }

type TrainOffer struct {
	ID    string  `json:"id"`
	Train Carrier `json:"train"`
	Type  string  `json:"type"`
	Leg
	Price      Price    `json:"price"`
	Class      string   `json:"class"`
	Seats      int      `json:"seats"`
	Facilities []string `json:"facilities"`
}

func (o TrainOffer) PriceAmount() int64 { return o.Price.Amount }

type ShipOffer struct {
	ID       string  `json:"id"`
	ShipName string  `json:"ship_name"`
	Company  Carrier `json:"company"`
	Leg
	Price      Price    `json:"price"`
	VehicleFee int64    `json:"vehicle_fee,omitempty"`
	Vehicle    string   `json:"vehicle,omitempty"`
	Class      string   `json:"class"`
	Seats      int      `json:"seats"`
	Facilities []string `json:"facilities"`
}

func (o ShipOffer) PriceAmount() int64 { return o.Price.Amount }
