package itinerary

import "strings"

// TimeSlot is one block of the day template.
type TimeSlot struct {
	TimeBlock   string
	Arrival     string
	DurationMin int
}

const (
	BlockMorning   = "morning"
	BlockLunch     = "lunch"
	BlockAfternoon = "afternoon"
	BlockDinner    = "dinner"
	BlockEvening   = "evening"

	bestTimeAny = "any"
)

var dayTemplate = []TimeSlot{
	{TimeBlock: BlockMorning, Arrival: "09:00", DurationMin: 60},
	{TimeBlock: BlockLunch, Arrival: "12:00", DurationMin: 90},
	{TimeBlock: BlockAfternoon, Arrival: "14:30", DurationMin: 90},
	{TimeBlock: BlockDinner, Arrival: "19:00", DurationMin: 90},
	{TimeBlock: BlockEvening, Arrival: "21:00", DurationMin: 60},
}

// compatibleTimes lists, per block, the best-time tags a place may carry to fit it.
var compatibleTimes = map[string][]string{
	BlockMorning:   {"morning"},
	BlockLunch:     {"lunch", "morning", "afternoon"},
	BlockAfternoon: {"afternoon", "morning"},
	BlockDinner:    {"dinner", "evening", "lunch"},
	BlockEvening:   {"evening"},
}

// DayTemplate returns a copy of the ordered day template.
func DayTemplate() []TimeSlot {
	out := make([]TimeSlot, len(dayTemplate))
	copy(out, dayTemplate)
	return out
}

// SlotsFor truncates the template to the requested number of stops per day.
func SlotsFor(maxStopsPerDay int) []TimeSlot {
	n := min(max(maxStopsPerDay, 0), len(dayTemplate))
	return DayTemplate()[:n]
}

// IsGoodTimeMatch reports whether a place with the given best-time tag fits the block.
// Untagged places, "any", and unknown blocks always match.
func IsGoodTimeMatch(bestTime, timeBlock string) bool {
	tag := strings.ToLower(strings.TrimSpace(bestTime))
	if tag == "" || tag == bestTimeAny {
		return true
	}
	allowed, ok := compatibleTimes[timeBlock]
	if !ok {
		return true
	}
	for _, t := range allowed {
		if strings.Contains(tag, t) {
			return true
		}
	}
	return false
}
