// Package maps implements the route estimator on the Google Distance Matrix API.
package maps

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"canino/config"
	"canino/internal/domain/service"

	"github.com/pkg/errors"
	gmaps "googlemaps.github.io/maps"
)

const defaultRequestTimeout = 5 * time.Second

// distanceMatrixEstimator implements service.RouteEstimator using the
// Google Distance Matrix API with traffic-aware durations.
type distanceMatrixEstimator struct {
	client  *gmaps.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewDistanceMatrixEstimator is the constructor for distanceMatrixEstimator.
func NewDistanceMatrixEstimator(cfg *config.Config, logger *slog.Logger) (service.RouteEstimator, error) {
	if cfg.Maps == nil || cfg.Maps.APIKey == "" {
		return nil, errors.New("distance matrix requires an API key")
	}

	client, err := gmaps.NewClient(gmaps.WithAPIKey(cfg.Maps.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create maps client")
	}

	timeout := cfg.Maps.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &distanceMatrixEstimator{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Estimate computes one traffic-aware driving estimate. Minutes are rounded
// up so a 61-second leg reads as 2 minutes, never 1; anything other than an
// OK element collapses into ErrRouteUnavailable so callers show "unknown".
func (e *distanceMatrixEstimator) Estimate(ctx context.Context, origin, destination service.Coordinate) (*service.Estimate, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req := &gmaps.DistanceMatrixRequest{
		Origins:       []string{formatCoordinate(origin)},
		Destinations:  []string{formatCoordinate(destination)},
		Mode:          gmaps.TravelModeDriving,
		DepartureTime: "now",
		TrafficModel:  gmaps.TrafficModelBestGuess,
	}

	resp, err := e.client.DistanceMatrix(ctx, req)
	if err != nil {
		e.logger.Warn("Distance matrix request failed", slog.String("error", err.Error()))

		return nil, service.ErrRouteUnavailable
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, service.ErrRouteUnavailable
	}

	elem := resp.Rows[0].Elements[0]
	if elem.Status != "OK" {
		e.logger.Warn("Distance matrix element not OK", slog.String("status", elem.Status))

		return nil, service.ErrRouteUnavailable
	}

	// Prefer the traffic-aware duration; fall back to the static one.
	duration := elem.DurationInTraffic
	if duration <= 0 {
		duration = elem.Duration
	}
	if duration <= 0 {
		return nil, service.ErrRouteUnavailable
	}

	minutes := int(math.Ceil(duration.Seconds() / 60))
	if minutes < 1 {
		minutes = 1
	}

	return &service.Estimate{
		EtaMinutes:   minutes,
		DistanceText: elem.Distance.HumanReadable,
		DurationText: duration.Round(time.Minute).String(),
	}, nil
}

func formatCoordinate(c service.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}
