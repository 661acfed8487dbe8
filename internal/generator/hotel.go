package generator

import (
	"math"

	"github.com/dharmasatrya/travelnesia/internal/filter"
	"github.com/dharmasatrya/travelnesia/internal/idgen"
	"github.com/dharmasatrya/travelnesia/internal/models"
	"github.com/dharmasatrya/travelnesia/internal/pricing"
	"github.com/dharmasatrya/travelnesia/internal/ranking"
)

// Hotels generates one candidate per chain slot. The price bracket is checked
// against the pre-jitter nightly rate, so a shown price may sit just outside it.
func (g *Generator) Hotels(req models.HotelRequest) []models.HotelOffer {
	g.mu.Lock()
	defer g.mu.Unlock()

	nights := req.Nights()
	rooms := req.RoomCount()
	areas, ok := cityAreas[req.City]
	if !ok {
		areas = defaultAreas
	}

	offers := make([]models.HotelOffer, 0, HotelCandidates)
	for i := 0; i < HotelCandidates; i++ {
		chain := hotelChains[i%len(hotelChains)]
		kind := chain.Types[g.rng.IntN(len(chain.Types))]
		star := chain.Stars[g.rng.IntN(len(chain.Stars))]
		area := areas[g.rng.IntN(len(areas))]

		base := pricing.HotelBasePrice(req.City, star)
		nightly := pricing.Jitter(g.rng, base, pricing.HotelBand, pricing.HotelGranularity)

		offers = append(offers, models.HotelOffer{
			ID:            idgen.Prefixed(g.ids, "HTL"),
			Name:          chain.Name + " " + kind + " " + area,
			Chain:         chain.Name,
			Type:          kind,
			Star:          star,
			Area:          area,
			City:          req.City,
			BasePrice:     base,
			PricePerNight: models.NewPrice(nightly),
			TotalPrice:    models.NewPrice(nightly * int64(nights) * int64(rooms)),
			Nights:        nights,
			Rooms:         rooms,
			RoomsLeft:     g.rng.IntN(10) + 1,
			Rating:        ranking.HotelRating(g.rng, star),
			ReviewCount:   ranking.ReviewCount(g.rng),
			Amenities:     hotelAmenities(star),
			Image:         hotelImages[i%len(hotelImages)],
			DistanceKm:    math.Round((g.rng.Float64()*5+0.5)*10) / 10,
			WiFi:          true,
			Breakfast:     star >= 4,
			Pool:          star >= 4,
			Gym:           star >= 5,
		})
	}

	offers = filter.Apply(offers, filter.ByPriceRange(req.PriceRange))
	return filter.SortByPrice(offers)
}
