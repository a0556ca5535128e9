package itinerary

import (
	"math"

	"github.com/FACorreiaa/locallist-builder/internal/types"
)

const (
	earthRadiusKm = 6371

	// walkThresholdKm is the distance below which a leg is walked.
	walkThresholdKm = 2.0
	walkSpeedKmH    = 5.0
	driveSpeedKmH   = 30.0
	minTravelMin    = 5
)

// Haversine calculates the great-circle distance between two coordinates.
// Returns distance in kilometers.
func Haversine(from, to types.GeoPoint) float64 {
	lat1Rad := toRad(from.Lat)
	lat2Rad := toRad(to.Lat)
	dlat := toRad(to.Lat - from.Lat)
	dlon := toRad(to.Lon - from.Lon)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// TravelModeFor picks walking for short legs and driving otherwise.
func TravelModeFor(distanceKm float64) string {
	if distanceKm < walkThresholdKm {
		return types.TravelModeWalk
	}
	return types.TravelModeDrive
}

// EstimateTravelTime converts a distance into minutes at the nominal speed of the mode,
// never less than five minutes.
func EstimateTravelTime(distanceKm float64, mode string) int {
	speed := driveSpeedKmH
	if mode == types.TravelModeWalk {
		speed = walkSpeedKmH
	}
	minutes := int(math.Round(distanceKm / speed * 60))
	return max(minTravelMin, minutes)
}

// NewTravelSegment estimates the leg between two stops. The distance is rounded to
// one decimal first and the mode and duration are derived from the rounded value, so a
// 1.95-1.99 km leg reads 2.0 km and drives even though its raw distance is under the
// walking threshold. The reported segment always satisfies walk iff distance_km < 2.0.
func NewTravelSegment(from, to types.GeoPoint) types.TravelSegment {
	dist := roundTo(Haversine(from, to), 1)
	mode := TravelModeFor(dist)
	return types.TravelSegment{
		DistanceKm:  dist,
		DurationMin: EstimateTravelTime(dist, mode),
		Mode:        mode,
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
