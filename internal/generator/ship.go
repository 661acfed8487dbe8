package generator

import (
	"github.com/dharmasatrya/travelnesia/internal/filter"
	"github.com/dharmasatrya/travelnesia/internal/idgen"
	"github.com/dharmasatrya/travelnesia/internal/models"
	"github.com/dharmasatrya/travelnesia/internal/pricing"
	"github.com/dharmasatrya/travelnesia/internal/schedule"
)

func (g *Generator) Ships(req models.ShipRequest) []models.ShipOffer {
	g.mu.Lock()
	defer g.mu.Unlock()

	basePrice := pricing.ShipBasePrice(req.FromPort, req.ToPort, req.ShipClass)
	minutes := pricing.ShipMinutes(req.FromPort, req.ToPort)
	from := place(req.FromPort, portNames)
	to := place(req.ToPort, portNames)

	var fee int64
	vehicle := ""
	if req.HasVehicle() {
		fee = pricing.VehicleFee(req.Vehicle)
		vehicle = req.Vehicle
	}

	offers := make([]models.ShipOffer, 0, ShipCandidates)
	for i := 0; i < ShipCandidates; i++ {
		line := shipLines[i%len(shipLines)]
		vessel := line.Vessels[g.rng.IntN(len(line.Vessels))]
		leg := g.leg(from, to, schedule.ShipWindow, minutes, false)
		price := pricing.Jitter(g.rng, basePrice, pricing.ShipBand, pricing.ShipGranularity) + fee

		offers = append(offers, models.ShipOffer{
			ID:         idgen.Prefixed(g.ids, line.Code),
			ShipName:   vessel,
			Company:    line.Carrier,
			Leg:        leg,
			Price:      models.NewPrice(price),
			VehicleFee: fee,
			Vehicle:    vehicle,
			Class:      req.ShipClass,
			Seats:      g.rng.IntN(50) + 20,
			Facilities: shipFacilities(req.ShipClass),
		})
	}

	return filter.SortByPrice(offers)
}
