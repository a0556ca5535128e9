package itinerary

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/locallist-builder/internal/types"
)

func placeWithCategory(name, category string) types.Place {
	return types.Place{ID: uuid.New(), Name: name, Category: category}
}

func TestFilterCandidates(t *testing.T) {
	places := []types.Place{
		placeWithCategory("Joe's Stone Crab", "food"),
		placeWithCategory("Broken Shaker", "Nightlife"),
		placeWithCategory("Vizcaya", "culture"),
		placeWithCategory("Ariete", "fine-dining-food"),
		placeWithCategory("Panther Coffee", "coffee"),
		placeWithCategory("Bayfront Park", "outdoors"),
	}

	t.Run("no categories returns input unchanged", func(t *testing.T) {
		got := FilterCandidates(places, types.Preferences{})
		assert.Equal(t, places, got)
	})

	t.Run("exact and substring matches keep order", func(t *testing.T) {
		got := FilterCandidates(places, types.Preferences{Categories: []string{"food", "nightlife"}})
		assert.Equal(t, []string{"Joe's Stone Crab", "Broken Shaker", "Ariete"}, names(got))
	})

	t.Run("no match yields empty", func(t *testing.T) {
		got := FilterCandidates(places, types.Preferences{Categories: []string{"wellness"}})
		assert.Empty(t, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		prefs := types.Preferences{Categories: []string{"food", "outdoors", "culture"}}
		once := FilterCandidates(places, prefs)
		twice := FilterCandidates(once, prefs)
		assert.Equal(t, once, twice)
	})
}

func names(places []types.Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.Name)
	}
	return out
}
