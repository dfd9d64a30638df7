package service

import (
	"context"
	"errors"
)

// ErrRouteUnavailable is returned when the external routing service cannot
// produce an estimate (non-OK element status, transport error, timeout).
// Callers must surface "unknown" rather than fabricate a value.
var ErrRouteUnavailable = errors.New("route estimate unavailable")

// Coordinate is a WGS84 lat/lng pair.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Estimate is a traffic-aware driving estimate between two coordinates.
type Estimate struct {
	EtaMinutes   int    // ceil(duration in traffic / 60s), always >= 1 for a reachable pair
	DistanceText string // human distance, e.g. "4.2 km"
	DurationText string // human duration, e.g. "12 mins"
}

// RouteEstimator computes a traffic-aware driving duration via an external
// distance-matrix service. Each call is independent: no caching, no retry.
type RouteEstimator interface {
	Estimate(ctx context.Context, origin, destination Coordinate) (*Estimate, error)
}
