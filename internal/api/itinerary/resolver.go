package itinerary

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/FACorreiaa/locallist-builder/internal/types"
)

// ResolveStops joins scheduled stops to their candidate places and assigns each a
// presentation-only ID from newID (uuid.New when nil).
func ResolveStops(stops []types.ScheduledStop, candidates []types.Place, newID func() uuid.UUID) []types.ResolvedStop {
	if newID == nil {
		newID = uuid.New
	}
	byID := lo.KeyBy(candidates, func(p types.Place) uuid.UUID { return p.ID })

	return lo.Map(stops, func(stop types.ScheduledStop, _ int) types.ResolvedStop {
		resolved := types.ResolvedStop{
			ID:            newID(),
			ScheduledStop: stop,
		}
		if place, ok := byID[stop.PlaceID]; ok {
			resolved.Place = summarize(place)
		}
		return resolved
	})
}

func summarize(p types.Place) *types.PlaceSummary {
	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}
	return &types.PlaceSummary{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Neighborhood: p.Neighborhood,
		WhyThisPlace: p.WhyThisPlace,
		PriceRange:   p.PriceRange,
		Photos:       photos,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
	}
}
