package itinerary

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/FACorreiaa/locallist-builder/internal/types"
)

// Shuffler permutes n elements in place. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// identityShuffler keeps the candidate order, used for reproducible schedules.
type identityShuffler struct{}

func (identityShuffler) Shuffle(int, func(i, j int)) {}

// NoShuffle returns a Shuffler that leaves the candidate order untouched.
func NoShuffle() Shuffler { return identityShuffler{} }

// NewSeededShuffler returns a deterministic shuffler for the given seed.
func NewSeededShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed))
}

// Scheduler lays candidates out over days and time blocks.
type Scheduler struct {
	newShuffler func() Shuffler
}

// NewScheduler builds a scheduler that draws a fresh shuffler per Build call.
// A nil factory yields a randomly seeded shuffler each time.
func NewScheduler(newShuffler func() Shuffler) *Scheduler {
	if newShuffler == nil {
		newShuffler = func() Shuffler {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	return &Scheduler{newShuffler: newShuffler}
}

// Build shuffles the candidates once and fills each day's truncated template in order.
// A place is used at most once across the whole plan; a slot with no fitting
// candidate is skipped and keeps its template index. The travel cursor is reset
// every day and only advances over stops that have coordinates.
func (s *Scheduler) Build(candidates []types.Place, prefs types.Preferences) []types.ScheduledStop {
	shuffled := make([]types.Place, len(candidates))
	copy(shuffled, candidates)
	s.newShuffler().Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	slots := SlotsFor(prefs.MaxStopsPerDay)
	used := make(map[uuid.UUID]struct{}, len(shuffled))
	stops := make([]types.ScheduledStop, 0, prefs.Days*len(slots))

	for day := 1; day <= prefs.Days; day++ {
		var prev *types.GeoPoint
		placedToday := 0

		for i, slot := range slots {
			place, ok := pickCandidate(shuffled, used, slot.TimeBlock)
			if !ok {
				continue
			}
			used[place.ID] = struct{}{}

			loc, hasLoc := place.Location()
			var travel *types.TravelSegment
			if placedToday > 0 && prev != nil && hasLoc {
				seg := NewTravelSegment(*prev, loc)
				travel = &seg
			}

			stops = append(stops, types.ScheduledStop{
				PlaceID:              place.ID,
				DayNumber:            day,
				OrderIndex:           i,
				TimeBlock:            slot.TimeBlock,
				SuggestedArrival:     slot.Arrival,
				SuggestedDurationMin: slot.DurationMin,
				TravelFromPrevious:   travel,
			})
			placedToday++

			if hasLoc {
				prev = &loc
			}
		}
	}
	return stops
}

func pickCandidate(shuffled []types.Place, used map[uuid.UUID]struct{}, timeBlock string) (types.Place, bool) {
	for _, p := range shuffled {
		if _, taken := used[p.ID]; taken {
			continue
		}
		if IsGoodTimeMatch(p.BestTime, timeBlock) {
			return p, true
		}
	}
	return types.Place{}, false
}
