package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingFields         ValidationError = "Mohon lengkapi semua field yang wajib diisi"
	ErrSameCity              ValidationError = "Kota asal dan tujuan tidak boleh sama"
	ErrSameStation           ValidationError = "Stasiun asal dan tujuan tidak boleh sama"
	ErrSamePort              ValidationError = "Pelabuhan asal dan tujuan tidak boleh sama"
	ErrCheckoutBeforeCheckin ValidationError = "Tanggal check-out harus setelah check-in"
	ErrInvalidDate           ValidationError = "Format tanggal tidak valid"
	ErrUnknownMode           ValidationError = "Jenis perjalanan tidak dikenal"
)

// FieldErrors lists every required field that was left empty.
// It unwraps to ErrMissingFields so callers only need errors.Is.
type FieldErrors struct {
	Fields []string
}

func (e *FieldErrors) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *FieldErrors) Unwrap() error {
	return ErrMissingFields
}

// ValidateForm returns one message per required field that is absent or blank.
func ValidateForm(fields map[string]string, required []string) []string {
	errs := make([]string, 0)
	for _, name := range required {
		if strings.TrimSpace(fields[name]) == "" {
			errs = append(errs, name+" wajib diisi")
		}
	}
	return errs
}

func checkRequired(fields map[string]string, required []string) error {
	if errs := ValidateForm(fields, required); len(errs) > 0 {
		return &FieldErrors{Fields: errs}
	}
	return nil
}

type FlightRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Departure  string `json:"departure"`
	Return     string `json:"return,omitempty"`
	Passengers string `json:"passengers"`
	Class      string `json:"class"`
}

var FlightRequiredFields = []string{"from", "to", "departure", "passengers", "class"}

func (r *FlightRequest) Fields() map[string]string {
	return map[string]string{
		"from":       r.From,
		"to":         r.To,
		"departure":  r.Departure,
		"return":     r.Return,
		"passengers": r.Passengers,
		"class":      r.Class,
	}
}

func (r *FlightRequest) Validate() error {
	if err := checkRequired(r.Fields(), FlightRequiredFields); err != nil {
		return err
	}
	if r.From == r.To {
		return ErrSameCity
	}
	return nil
}

type HotelRequest struct {
	City       string `json:"city"`
	Checkin    string `json:"checkin"`
	Checkout   string `json:"checkout"`
	Guests     string `json:"guests"`
	Rooms      string `json:"rooms"`
	PriceRange string `json:"priceRange,omitempty"`
}

var HotelRequiredFields = []string{"city", "checkin", "checkout", "guests", "rooms"}

func (r *HotelRequest) Fields() map[string]string {
	return map[string]string{
		"city":       r.City,
		"checkin":    r.Checkin,
		"checkout":   r.Checkout,
		"guests":     r.Guests,
		"rooms":      r.Rooms,
		"priceRange": r.PriceRange,
	}
}

func (r *HotelRequest) Validate() error {
	if err := checkRequired(r.Fields(), HotelRequiredFields); err != nil {
		return err
	}

	checkin, checkout, err := r.dates()
	if err != nil {
		return err
	}
	if !checkout.After(checkin) {
		return ErrCheckoutBeforeCheckin
	}
	return nil
}

func (r *HotelRequest) dates() (time.Time, time.Time, error) {
	checkin, err := time.Parse(DateLayout, strings.TrimSpace(r.Checkin))
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	checkout, err := time.Parse(DateLayout, strings.TrimSpace(r.Checkout))
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	return checkin, checkout, nil
}

// Nights is the stay length in whole days, rounded up. Zero when the dates
// cannot be parsed.
func (r *HotelRequest) Nights() int {
	checkin, checkout, err := r.dates()
	if err != nil {
		return 0
	}
	days := math.Abs(checkout.Sub(checkin).Hours() / 24)
	return int(math.Ceil(days))
}

func (r *HotelRequest) RoomCount() int {
	return positiveInt(r.Rooms)
}

type TrainRequest struct {
	FromStation     string `json:"fromStation"`
	ToStation       string `json:"toStation"`
	TrainDate       string `json:"trainDate"`
	TrainPassengers string `json:"trainPassengers"`
	TrainClass      string `json:"trainClass"`
	TrainType       string `json:"trainType,omitempty"`
}

var TrainRequiredFields = []string{"fromStation", "toStation", "trainDate", "trainPassengers", "trainClass"}

func (r *TrainRequest) Fields() map[string]string {
	return map[string]string{
		"fromStation":     r.FromStation,
		"toStation":       r.ToStation,
		"trainDate":       r.TrainDate,
		"trainPassengers": r.TrainPassengers,
		"trainClass":      r.TrainClass,
		"trainType":       r.TrainType,
	}
}

func (r *TrainRequest) Validate() error {
	if err := checkRequired(r.Fields(), TrainRequiredFields); err != nil {
		return err
	}
	if r.FromStation == r.ToStation {
		return ErrSameStation
	}
	return nil
}

type ShipRequest struct {
	FromPort       string `json:"fromPort"`
	ToPort         string `json:"toPort"`
	ShipDate       string `json:"shipDate"`
	ShipPassengers string `json:"shipPassengers"`
	ShipClass      string `json:"shipClass"`
	Vehicle        string `json:"vehicle,omitempty"`
}

var ShipRequiredFields = []string{"fromPort", "toPort", "shipDate", "shipPassengers", "shipClass"}

func (r *ShipRequest) Fields() map[string]string {
	return map[string]string{
		"fromPort":       r.FromPort,
		"toPort":         r.ToPort,
		"shipDate":       r.ShipDate,
		"shipPassengers": r.ShipPassengers,
		"shipClass":      r.ShipClass,
		"vehicle":        r.Vehicle,
	}
}

func (r *ShipRequest) Validate() error {
	if err := checkRequired(r.Fields(), ShipRequiredFields); err != nil {
		return err
	}
	if r.FromPort == r.ToPort {
		return ErrSamePort
	}
	return nil
}

// HasVehicle reports whether a vehicle is being shipped along with the passengers.
func (r *ShipRequest) HasVehicle() bool {
	return r.Vehicle != "" && r.Vehicle != "no"
}

func positiveInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// IsValidationError reports whether err came from request validation.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
