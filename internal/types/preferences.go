package types

import (
	"strings"

	"github.com/samber/lo"
)

const (
	MinDays            = 1
	MaxDays            = 7
	MinStopsPerDay     = 3
	MaxStopsPerDay     = 6
	DefaultGroupType   = "couple"
	DefaultPlanName    = "My Plan"
	DefaultStopsPerDay = 5
	DefaultCity        = "Miami"
)

// AllowedCategories is the fixed category vocabulary understood by the catalog.
var AllowedCategories = []string{"food", "nightlife", "coffee", "outdoors", "wellness", "culture"}

// AllowedGroupTypes is the fixed group vocabulary.
var AllowedGroupTypes = []string{"solo", "couple", "friends", "family-kids", "family", "group"}

// Preferences is the normalized trip preference record driving the scheduler.
type Preferences struct {
	Days           int      `json:"days"`
	Categories     []string `json:"categories"`
	Vibes          []string `json:"vibes"`
	GroupType      string   `json:"groupType"`
	PlanName       string   `json:"planName"`
	MaxStopsPerDay int      `json:"maxStopsPerDay"`
}

// DefaultPreferences returns the record used when nothing better is known.
func DefaultPreferences() Preferences {
	return Preferences{
		Days:           MinDays,
		Categories:     []string{},
		Vibes:          []string{},
		GroupType:      DefaultGroupType,
		PlanName:       DefaultPlanName,
		MaxStopsPerDay: DefaultStopsPerDay,
	}
}

// Normalize clamps the numeric bounds, drops unknown categories and resets unknown
// group types. Every extraction path goes through it before the record is used.
func (p Preferences) Normalize() Preferences {
	p.Days = clamp(p.Days, MinDays, MaxDays)
	p.MaxStopsPerDay = clamp(p.MaxStopsPerDay, MinStopsPerDay, MaxStopsPerDay)

	cats := make([]string, 0, len(p.Categories))
	seen := make(map[string]struct{}, len(p.Categories))
	for _, c := range p.Categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if !IsAllowedCategory(c) {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		cats = append(cats, c)
	}
	p.Categories = cats

	if p.Vibes == nil {
		p.Vibes = []string{}
	}

	group := strings.ToLower(strings.TrimSpace(p.GroupType))
	if !IsAllowedGroupType(group) {
		group = DefaultGroupType
	}
	p.GroupType = group
	p.PlanName = strings.TrimSpace(p.PlanName)
	return p
}

func IsAllowedCategory(c string) bool {
	return lo.Contains(AllowedCategories, c)
}

func IsAllowedGroupType(g string) bool {
	return lo.Contains(AllowedGroupTypes, g)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TripContext carries the optional structured hints sent with a builder message.
// Absent fields fall back to: group type "couple", no tags, day count derived from
// the message, city "Miami".
type TripContext struct {
	GroupType   *string  `json:"groupType,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
	Vibes       []string `json:"vibes,omitempty"`
	Days        *int     `json:"days,omitempty"`
	City        *string  `json:"city,omitempty"`
}

// CityOrDefault resolves the catalog city for a request.
func (c *TripContext) CityOrDefault() string {
	if c == nil || c.City == nil || strings.TrimSpace(*c.City) == "" {
		return DefaultCity
	}
	return strings.TrimSpace(*c.City)
}
