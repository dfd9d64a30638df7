// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for route persistence.
var (
	// ErrRouteNotFound is returned when a transport route is not found.
	ErrRouteNotFound = errors.New("transport route not found")
	// ErrStopNotFound is returned when a route stop is not found.
	ErrStopNotFound = errors.New("route stop not found")
	// ErrDuplicateRoute is returned when a route already exists for the
	// same (vehicle, date, type) tuple.
	ErrDuplicateRoute = errors.New("route already exists for vehicle, date and type")
)

// RouteRepository defines transport route and stop database operations.
type RouteRepository interface {
	// CreateRoute persists a route together with its ordered stops.
	// Returns ErrDuplicateRoute when the (vehicle, date, type) slot is taken.
	CreateRoute(ctx context.Context, route *entity.TransportRoute) error

	// FindRouteByID retrieves a route with its stops.
	FindRouteByID(ctx context.Context, id uuid.UUID) (*entity.TransportRoute, error)

	// FindRoutesByDate retrieves all routes for a service date, with stops.
	FindRoutesByDate(ctx context.Context, date time.Time) ([]*entity.TransportRoute, error)

	// FindRoutesByVehicleAndDate retrieves a vehicle's routes for a date.
	FindRoutesByVehicleAndDate(ctx context.Context, vehicleID uuid.UUID, date time.Time) ([]*entity.TransportRoute, error)

	// UpdateRouteStatus transitions a route's lifecycle status.
	UpdateRouteStatus(ctx context.Context, id uuid.UUID, status entity.RouteStatus) error

	// FindStopByID retrieves a single stop.
	FindStopByID(ctx context.Context, id uuid.UUID) (*entity.RouteStop, error)

	// CompleteStop marks a pending stop completed at the given time. The
	// update is conditioned on status = pending so a completed stop is left
	// untouched; the returned bool reports whether a row changed.
	CompleteStop(ctx context.Context, stopID uuid.UUID, at time.Time) (bool, error)

	// CountPendingStops returns how many of a route's stops are still pending.
	CountPendingStops(ctx context.Context, routeID uuid.UUID) (int64, error)

	// AppendRouteEvent appends a tracking event for a route.
	AppendRouteEvent(ctx context.Context, event *entity.RouteEvent) error

	// FindStaleActiveRoutes returns routes still planned or active whose
	// service date is before the given date. Used by daily maintenance.
	FindStaleActiveRoutes(ctx context.Context, before time.Time) ([]*entity.TransportRoute, error)
}
