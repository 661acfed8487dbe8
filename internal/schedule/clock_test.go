package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIntner []int

func (f *fixedIntner) IntN(n int) int {
	v := (*f)[0]
	*f = (*f)[1:]
	return v % n
}

func TestRandomDeparture(t *testing.T) {
	rng := &fixedIntner{0, 3}
	assert.Equal(t, Clock{Hour: 4, Minute: 45}, RandomDeparture(rng, FlightWindow))

	rng = &fixedIntner{17, 0}
	assert.Equal(t, Clock{Hour: 22, Minute: 0}, RandomDeparture(rng, TrainWindow))

	rng = &fixedIntner{15, 2}
	assert.Equal(t, Clock{Hour: 21, Minute: 30}, RandomDeparture(rng, ShipWindow))
}

func TestArrival(t *testing.T) {
	tests := []struct {
		name     string
		dep      Clock
		duration int
		want     Clock
		days     int
	}{
		{"same day", Clock{8, 0}, 150, Clock{10, 30}, 0},
		{"minute carry", Clock{8, 45}, 75, Clock{10, 0}, 0},
		{"midnight rollover", Clock{22, 30}, 150, Clock{1, 0}, 1},
		{"exact midnight", Clock{21, 30}, 150, Clock{0, 0}, 1},
		{"two days", Clock{6, 0}, 48 * 60, Clock{6, 0}, 2},
		{"ship 36h", Clock{20, 15}, 36 * 60, Clock{8, 15}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, days := Arrival(tt.dep, tt.duration)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.days, days)
		})
	}
}

func TestArrivalLabel(t *testing.T) {
	assert.Equal(t, "09:05", ArrivalLabel(Clock{9, 5}, 0))
	assert.Equal(t, "01:00 (+1)", ArrivalLabel(Clock{1, 0}, 1))
	assert.Equal(t, "06:00 (+2)", ArrivalLabel(Clock{6, 0}, 2))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "1j 15m", FormatDuration(75))
	assert.Equal(t, "2j 00m", FormatDuration(120))
	assert.Equal(t, "48j 00m", FormatDuration(48*60))
}

func TestFormatDateID(t *testing.T) {
	got, err := FormatDateID("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, "Senin, 19 Oktober 2026", got)

	_, err = FormatDateID("19-10-2026")
	assert.Error(t, err)
}
