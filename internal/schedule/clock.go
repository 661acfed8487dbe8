package schedule

import "fmt"

// Intner is the slice of a random source the departure picker needs.
type Intner interface {
	IntN(n int) int
}

// Window is the span of hours a mode schedules departures in.
type Window struct {
	FirstHour int
	Hours     int
}

var (
	FlightWindow = Window{FirstHour: 4, Hours: 20} // 04:00 - 23:45
	TrainWindow  = Window{FirstHour: 5, Hours: 18} // 05:00 - 22:45
	ShipWindow   = Window{FirstHour: 6, Hours: 16} // 06:00 - 21:45
)

// Clock is a time of day without a date.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// RandomDeparture picks an hour inside w and a minute on a quarter hour.
func RandomDeparture(rng Intner, w Window) Clock {
	return Clock{
		Hour:   w.FirstHour + rng.IntN(w.Hours),
		Minute: rng.IntN(4) * 15,
	}
}

// Arrival adds a duration to a departure and reports how many midnights were crossed.
func Arrival(dep Clock, durationMinutes int) (Clock, int) {
	hour := dep.Hour + durationMinutes/60
	minute := dep.Minute + durationMinutes%60
	if minute >= 60 {
		hour++
		minute -= 60
	}
	return Clock{Hour: hour % 24, Minute: minute}, hour / 24
}

// ArrivalLabel renders an arrival with a "(+N)" suffix when it lands on a later day.
func ArrivalLabel(arr Clock, days int) string {
	if days <= 0 {
		return arr.String()
	}
	return fmt.Sprintf("%s (+%d)", arr, days)
}

// FormatDuration renders minutes the way the site does: "2j 30m", or "45m" under an hour.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dj %02dm", minutes/60, minutes%60)
}
