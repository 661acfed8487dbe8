package generator

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/dharmasatrya/travelnesia/internal/idgen"
	"github.com/dharmasatrya/travelnesia/internal/models"
	"github.com/dharmasatrya/travelnesia/internal/schedule"
)

// Candidates generated per search, before any filtering.
const (
	FlightCandidates = 6
	HotelCandidates  = 8
	TrainCandidates  = 5
	ShipCandidates   = 4
)

// Rand is the random source offers are drawn from. *rand.Rand satisfies it;
// tests pass a seeded one or a stub.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Generator builds synthetic offers. It is safe for concurrent use; draws from
// the shared random source are serialized.
type Generator struct {
	mu  sync.Mutex
	rng Rand
	ids idgen.Generator
}

func New(rng Rand, ids idgen.Generator) *Generator {
	return &Generator{rng: rng, ids: ids}
}

// NewDefault seeds a PCG source from the clock.
func NewDefault(ids idgen.Generator) *Generator {
	seed := uint64(time.Now().UnixNano())
	return New(rand.New(rand.NewPCG(seed, seed>>1|1)), ids)
}

func newDuration(minutes int) models.Duration {
	return models.Duration{
		Hours:        minutes / 60,
		Minutes:      minutes % 60,
		TotalMinutes: minutes,
		Label:        schedule.FormatDuration(minutes),
	}
}

func place(code string, names map[string]string) models.Location {
	name, ok := names[code]
	if !ok {
		name = code
	}
	return models.Location{
		Code:     code,
		Name:     name,
		Timezone: schedule.TimezoneOf(code),
	}
}

// leg draws a departure inside w and derives the arrival. Flights and trains
// cross midnight at most once, so capDays clamps the label to "(+1)" for them.
func (g *Generator) leg(from, to models.Location, w schedule.Window, minutes int, capDays bool) models.Leg {
	dep := schedule.RandomDeparture(g.rng, w)
	arr, days := schedule.Arrival(dep, minutes)
	if capDays && days > 1 {
		days = 1
	}
	return models.Leg{
		From:      from,
		To:        to,
		Departure: dep.String(),
		Arrival:   schedule.ArrivalLabel(arr, days),
		DayOffset: days,
		Duration:  newDuration(minutes),
	}
}
