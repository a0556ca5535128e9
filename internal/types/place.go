package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	PlaceStatusPublished = "published"
	PlaceStatusDraft     = "draft"
)

// Place matches the places table structure. Only published rows are handed to the builder.
type Place struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Subcategory       string    `json:"subcategory,omitempty"`
	Neighborhood      string    `json:"neighborhood,omitempty"`
	City              string    `json:"city"`
	Latitude          *float64  `json:"latitude,omitempty"`
	Longitude         *float64  `json:"longitude,omitempty"`
	WhyThisPlace      string    `json:"whyThisPlace"`
	BestFor           []string  `json:"bestFor,omitempty"`
	SuitableFor       []string  `json:"suitableFor,omitempty"`
	BestTime          string    `json:"bestTime,omitempty"`
	PriceRange        string    `json:"priceRange,omitempty"`
	Photos            []string  `json:"photos,omitempty"`
	GooglePlaceID     string    `json:"googlePlaceId,omitempty"`
	GoogleRating      *float64  `json:"googleRating,omitempty"`
	GoogleReviewCount *int      `json:"googleReviewCount,omitempty"`
	Source            string    `json:"source"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Location returns the place coordinates when both are known.
func (p Place) Location() (GeoPoint, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return GeoPoint{}, false
	}
	return GeoPoint{Lat: *p.Latitude, Lon: *p.Longitude}, true
}

// PlaceFilter holds the optional query parameters of the places listing.
type PlaceFilter struct {
	City         string
	Category     string
	Neighborhood string
	Status       string
	Limit        int
	Offset       int
}

// PlaceSummary is the place projection attached to each resolved stop.
type PlaceSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	WhyThisPlace string    `json:"whyThisPlace"`
	PriceRange   string    `json:"priceRange,omitempty"`
	Photos       []string  `json:"photos"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
}

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type PlacesResponse struct {
	Places []Place `json:"places"`
	Total  int     `json:"total"`
}
