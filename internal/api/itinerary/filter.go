package itinerary

import (
	"strings"

	"github.com/samber/lo"

	"github.com/FACorreiaa/locallist-builder/internal/types"
)

// categoryMap maps a preference tag to the catalog category it selects exactly.
var categoryMap = map[string]string{
	"food":      "food",
	"nightlife": "nightlife",
	"coffee":    "coffee",
	"outdoors":  "outdoors",
	"wellness":  "wellness",
	"culture":   "culture",
}

// FilterCandidates keeps the places whose category matches one of the requested tags,
// either exactly through categoryMap or as a substring ("fine-dining-food" matches "food").
// Input order is preserved. Without categories the input is returned unchanged.
func FilterCandidates(places []types.Place, prefs types.Preferences) []types.Place {
	if len(prefs.Categories) == 0 {
		return places
	}
	return lo.Filter(places, func(p types.Place, _ int) bool {
		placeCat := strings.ToLower(p.Category)
		return lo.SomeBy(prefs.Categories, func(c string) bool {
			c = strings.ToLower(c)
			if mapped, ok := categoryMap[c]; ok && mapped == placeCat {
				return true
			}
			return c != "" && strings.Contains(placeCat, c)
		})
	})
}
