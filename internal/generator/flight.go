package generator

import (
	"fmt"

	"github.com/dharmasatrya/travelnesia/internal/filter"
	"github.com/dharmasatrya/travelnesia/internal/idgen"
	"github.com/dharmasatrya/travelnesia/internal/models"
	"github.com/dharmasatrya/travelnesia/internal/pricing"
	"github.com/dharmasatrya/travelnesia/internal/schedule"
)

func (g *Generator) Flights(req models.FlightRequest) []models.FlightOffer {
	g.mu.Lock()
	defer g.mu.Unlock()

	basePrice := pricing.FlightBasePrice(req.From, req.To, req.Class)
	minutes := pricing.FlightMinutes(req.From, req.To)
	from := place(req.From, airportNames)
	to := place(req.To, airportNames)

	offers := make([]models.FlightOffer, 0, FlightCandidates)
	for i := 0; i < FlightCandidates; i++ {
		airline := airlines[i%len(airlines)]
		leg := g.leg(from, to, schedule.FlightWindow, minutes, true)
		price := pricing.Jitter(g.rng, basePrice, pricing.FlightBand, pricing.FlightGranularity)

		stops := 0
		if g.rng.Float64() > 0.7 {
			stops = 1
		}

		offers = append(offers, models.FlightOffer{
			ID:           idgen.Prefixed(g.ids, airline.Code),
			Airline:      airline,
			FlightNumber: fmt.Sprintf("%s-%d", airline.Code, 100+g.rng.IntN(900)),
			Leg:          leg,
			Price:        models.NewPrice(price),
			Class:        req.Class,
			Seats:        g.rng.IntN(20) + 5,
			Stops:        stops,
		})
	}

	return filter.SortByPrice(offers)
}
