package generator

import (
	"github.com/dharmasatrya/travelnesia/internal/filter"
	"github.com/dharmasatrya/travelnesia/internal/idgen"
	"github.com/dharmasatrya/travelnesia/internal/models"
	"github.com/dharmasatrya/travelnesia/internal/pricing"
	"github.com/dharmasatrya/travelnesia/internal/schedule"
)

func (g *Generator) Trains(req models.TrainRequest) []models.TrainOffer {
	g.mu.Lock()
	defer g.mu.Unlock()

	basePrice := pricing.TrainBasePrice(req.FromStation, req.ToStation, req.TrainClass)
	minutes := pricing.TrainMinutes(req.FromStation, req.ToStation)
	from := place(req.FromStation, stationNames)
	to := place(req.ToStation, stationNames)

	offers := make([]models.TrainOffer, 0, TrainCandidates)
	for i := 0; i < TrainCandidates; i++ {
		svc := trainServices[i%len(trainServices)]
		leg := g.leg(from, to, schedule.TrainWindow, minutes, true)
		price := pricing.Jitter(g.rng, basePrice, pricing.TrainBand, pricing.TrainGranularity)

		offers = append(offers, models.TrainOffer{
			ID:         idgen.Prefixed(g.ids, svc.Code),
			Train:      svc.Carrier,
			Type:       svc.Type,
			Leg:        leg,
			Price:      models.NewPrice(price),
			Class:      req.TrainClass,
			Seats:      g.rng.IntN(30) + 10,
			Facilities: trainFacilities(svc.Type, req.TrainClass),
		})
	}

	offers = filter.Apply(offers, filter.ByTrainType(req.TrainType))
	return filter.SortByPrice(offers)
}
