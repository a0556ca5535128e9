package types

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("requested item not found")

const (
	PlanTypeAI = "ai"

	TravelModeWalk  = "walk"
	TravelModeDrive = "drive"
)

// TravelSegment is the estimated leg from the previous stop of the same day.
type TravelSegment struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin int     `json:"duration_min"`
	Mode        string  `json:"mode"`
}

// ScheduledStop is one placement produced by the scheduler.
type ScheduledStop struct {
	PlaceID              uuid.UUID      `json:"placeId"`
	DayNumber            int            `json:"dayNumber"`
	OrderIndex           int            `json:"orderIndex"`
	TimeBlock            string         `json:"timeBlock"`
	SuggestedArrival     string         `json:"suggestedArrival"`
	SuggestedDurationMin int            `json:"suggestedDurationMin"`
	TravelFromPrevious   *TravelSegment `json:"travelFromPrevious,omitempty"`
}

// ResolvedStop is a scheduled stop joined to its place for presentation.
// ID only identifies the stop within one response.
type ResolvedStop struct {
	ID uuid.UUID `json:"id"`
	ScheduledStop
	Place *PlaceSummary `json:"place"`
}

// PlanSummary is the plan header returned by the builder. Ephemeral plans are never stored.
type PlanSummary struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	City         string       `json:"city"`
	Type         string       `json:"type"`
	Description  string       `json:"description"`
	DurationDays int          `json:"durationDays"`
	TripContext  *TripContext `json:"tripContext"`
	IsPublic     bool         `json:"isPublic"`
	IsEphemeral  bool         `json:"isEphemeral"`
	CreatedByID  *uuid.UUID   `json:"createdById,omitempty"`
	CreatedAt    *time.Time   `json:"createdAt,omitempty"`
}

type BuilderChatRequest struct {
	Message     string       `json:"message" example:"A romantic weekend with great food"`
	TripContext *TripContext `json:"tripContext,omitempty"`
}

type BuilderChatResponse struct {
	Plan    PlanSummary    `json:"plan"`
	Stops   []ResolvedStop `json:"stops"`
	Message string         `json:"message"`
}

// Plan matches the plans table structure.
type Plan struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	City         string          `json:"city"`
	Type         string          `json:"type"`
	Description  string          `json:"description,omitempty"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	DurationDays int             `json:"durationDays"`
	TripContext  json.RawMessage `json:"tripContext,omitempty"`
	IsPublic     bool            `json:"isPublic"`
	IsShowcase   bool            `json:"isShowcase"`
	CreatedByID  *uuid.UUID      `json:"createdById,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// PlanFilter holds the optional query parameters of the plans listing.
type PlanFilter struct {
	City         string
	Type         string
	ShowcaseOnly bool
	Limit        int
	Offset       int
}

// PlanStop is a persisted stop joined with its place.
type PlanStop struct {
	ID                   uuid.UUID      `json:"id"`
	DayNumber            int            `json:"-"`
	OrderIndex           int            `json:"orderIndex"`
	TimeBlock            string         `json:"timeBlock,omitempty"`
	SuggestedArrival     string         `json:"suggestedArrival,omitempty"`
	SuggestedDurationMin *int           `json:"suggestedDurationMin,omitempty"`
	TravelFromPrevious   *TravelSegment `json:"travelFromPrevious,omitempty"`
	Place                *Place         `json:"place"`
}

type PlanDay struct {
	DayNumber int        `json:"dayNumber"`
	Stops     []PlanStop `json:"stops"`
}

// PlanDetail is a stored plan with its stops grouped by day.
type PlanDetail struct {
	Plan
	Days []PlanDay `json:"days"`
}

type PlansResponse struct {
	Plans []Plan `json:"plans"`
	Total int    `json:"total"`
}
