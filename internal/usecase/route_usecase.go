package usecase

import (
	"context"
	"time"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanRouteInput requests route generation for one vehicle, date and direction.
type PlanRouteInput struct {
	VehicleID uuid.UUID        `json:"vehicle_id" validate:"required"`
	Date      time.Time        `json:"date" validate:"required"`
	RouteType entity.RouteType `json:"route_type" validate:"required,oneof=pickup dropoff"`
}

// CompleteStopInput marks one stop done from the driver device.
type CompleteStopInput struct {
	RouteID uuid.UUID `json:"route_id" validate:"required"`
	StopID  uuid.UUID `json:"stop_id" validate:"required"`
}

// CompleteStopResult reports what the stop completion changed.
type CompleteStopResult struct {
	Stop           *entity.RouteStop `json:"stop"`
	AlreadyDone    bool              `json:"already_done"`    // The stop was completed before this call.
	RouteCompleted bool              `json:"route_completed"` // This call closed the whole route.
}

// RouteUsecase defines the transport route lifecycle use cases.
type RouteUsecase interface {
	// PlanRoute generates a route from the enrolled transport dogs and
	// their primary addresses, ordered by pickup order.
	PlanRoute(ctx context.Context, input *PlanRouteInput) (*entity.TransportRoute, error)

	// StartRoute transitions a planned route to active and records the
	// route_started event.
	StartRoute(ctx context.Context, driverID, routeID uuid.UUID) (*entity.TransportRoute, error)

	// CompleteStop marks a pending stop completed. Idempotent: completing a
	// stop twice reports AlreadyDone without side effects. When the last
	// stop closes, the route is auto-completed if configured.
	CompleteStop(ctx context.Context, driverID uuid.UUID, input *CompleteStopInput) (*CompleteStopResult, error)

	// CompleteRoute closes a route explicitly, regardless of pending
	// stops. Completing an already-completed route is a no-op.
	CompleteRoute(ctx context.Context, driverID, routeID uuid.UUID) (*entity.TransportRoute, error)

	// GetRoute retrieves a route with its stops.
	GetRoute(ctx context.Context, routeID uuid.UUID) (*entity.TransportRoute, error)

	// GetRoutesForDate retrieves every route of a service date.
	GetRoutesForDate(ctx context.Context, date time.Time) ([]*entity.TransportRoute, error)

	// GetDriverRoutes retrieves the routes of the driver's vehicle for a date.
	GetDriverRoutes(ctx context.Context, driverID uuid.UUID, date time.Time) ([]*entity.TransportRoute, error)

	// GetDogStops returns today's stops involving the guardian's dogs, so a
	// parent can follow the runs that matter to them.
	GetDogStops(ctx context.Context, guardianID uuid.UUID, date time.Time) ([]*entity.TransportRoute, error)
}
