package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/locallist-builder/internal/types"
)

func TestHaversine(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		p := types.GeoPoint{Lat: 25.7617, Lon: -80.1918}
		assert.InDelta(t, 0.0, Haversine(p, p), 1e-9)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := Haversine(types.GeoPoint{Lat: 0, Lon: 0}, types.GeoPoint{Lat: 1, Lon: 0})
		assert.InDelta(t, 111.19, d, 0.01)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := types.GeoPoint{Lat: 25.7617, Lon: -80.1918}
		b := types.GeoPoint{Lat: 25.7907, Lon: -80.1300}
		assert.InDelta(t, Haversine(a, b), Haversine(b, a), 1e-9)
	})
}

func TestTravelModeFor(t *testing.T) {
	assert.Equal(t, types.TravelModeWalk, TravelModeFor(0))
	assert.Equal(t, types.TravelModeWalk, TravelModeFor(1.9))
	assert.Equal(t, types.TravelModeDrive, TravelModeFor(2.0))
	assert.Equal(t, types.TravelModeDrive, TravelModeFor(12.4))
}

func TestEstimateTravelTime(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		mode     string
		want     int
	}{
		{"short walk hits the floor", 0.1, types.TravelModeWalk, 5},
		{"walk 1.5 km", 1.5, types.TravelModeWalk, 18},
		{"drive 2 km hits the floor", 2.0, types.TravelModeDrive, 5},
		{"drive 10 km", 10, types.TravelModeDrive, 20},
		{"zero distance", 0, types.TravelModeDrive, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateTravelTime(tt.distance, tt.mode))
		})
	}
}

func TestNewTravelSegment(t *testing.T) {
	t.Run("roughly 1.5 km apart is a walk", func(t *testing.T) {
		// 0.0135 degrees of latitude is about 1.5 km.
		seg := NewTravelSegment(types.GeoPoint{Lat: 25.7600, Lon: -80.1900}, types.GeoPoint{Lat: 25.7735, Lon: -80.1900})
		assert.Equal(t, 1.5, seg.DistanceKm)
		assert.Equal(t, types.TravelModeWalk, seg.Mode)
		assert.GreaterOrEqual(t, seg.DurationMin, 5)
	})

	t.Run("mode follows the rounded distance", func(t *testing.T) {
		// About 1.97 km, which rounds to 2.0.
		seg := NewTravelSegment(types.GeoPoint{Lat: 0, Lon: 0}, types.GeoPoint{Lat: 0.01772, Lon: 0})
		assert.Equal(t, 2.0, seg.DistanceKm)
		assert.Equal(t, types.TravelModeDrive, seg.Mode)
		assert.Equal(t, 5, seg.DurationMin)
	})

	t.Run("long drive", func(t *testing.T) {
		seg := NewTravelSegment(types.GeoPoint{Lat: 25.7617, Lon: -80.1918}, types.GeoPoint{Lat: 26.1224, Lon: -80.1373})
		assert.Equal(t, types.TravelModeDrive, seg.Mode)
		assert.Greater(t, seg.DistanceKm, 30.0)
		assert.Equal(t, EstimateTravelTime(seg.DistanceKm, types.TravelModeDrive), seg.DurationMin)
	})
}
