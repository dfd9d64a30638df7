// Package util holds small shared helpers for coordinate handling.
package util

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// Coordinates are stored with 8 decimal places (~1mm resolution).
	coordPrecision = 1e8

	msToKmh = 3.6
)

// RoundCoordinate truncates a latitude or longitude to 8 decimal places
// so stored values match the database column precision.
func RoundCoordinate(v float64) float64 {
	return math.Round(v*coordPrecision) / coordPrecision
}

// ValidCoordinates reports whether lat/lng fall inside WGS84 bounds.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// SpeedToKmh converts a speed reported in m/s (the geolocation API unit)
// to km/h. Negative readings mean the device had no speed fix.
func SpeedToKmh(metersPerSecond float64) float64 {
	if metersPerSecond < 0 {
		return 0
	}

	return metersPerSecond * msToKmh
}

// DistanceMeters returns the great-circle distance between two points.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	return geo.Distance(orb.Point{lng1, lat1}, orb.Point{lng2, lat2})
}
