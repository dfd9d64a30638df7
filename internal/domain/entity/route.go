// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RouteType distinguishes the morning pickup run from the afternoon dropoff run.
type RouteType string

const (
	RouteTypePickup  RouteType = "pickup"
	RouteTypeDropoff RouteType = "dropoff"
)

// RouteStatus is the lifecycle state of a transport route.
type RouteStatus string

const (
	RouteStatusPlanned   RouteStatus = "planned"
	RouteStatusActive    RouteStatus = "active"
	RouteStatusCompleted RouteStatus = "completed"
)

// StopStatus is the lifecycle state of a route stop. The transition is
// monotonic: pending becomes completed exactly once and never reverts.
type StopStatus string

const (
	StopStatusPending   StopStatus = "pending"
	StopStatusCompleted StopStatus = "completed"
)

// TransportRoute represents one vehicle's run for a given day and direction.
type TransportRoute struct {
	ID        uuid.UUID   `json:"id"`         // The Global Unique Identifier (GUID) for the route.
	VehicleID uuid.UUID   `json:"vehicle_id"` // The vehicle assigned to this run.
	Date      time.Time   `json:"date"`       // The service date (date only, local school time).
	RouteType RouteType   `json:"route_type"` // pickup or dropoff.
	Status    RouteStatus `json:"status"`     // planned, active or completed.
	Stops     []RouteStop `json:"stops,omitempty"`
	CreatedAt time.Time   `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time   `json:"updated_at"` // Timestamp of the last modification.
}

// RouteStop is one pickup/dropoff point within a route, tied to one dog's address.
type RouteStop struct {
	ID         uuid.UUID  `json:"id"`          // The Global Unique Identifier (GUID) for the stop.
	RouteID    uuid.UUID  `json:"route_id"`    // The route this stop belongs to.
	DogID      uuid.UUID  `json:"dog_id"`      // The dog picked up or dropped off at this stop.
	StopOrder  int        `json:"stop_order"`  // Position within the route's ordered stop sequence.
	Address    string     `json:"address"`     // Full address text of the stop.
	Latitude   float64    `json:"latitude"`    // Geographic latitude of the stop.
	Longitude  float64    `json:"longitude"`   // Geographic longitude of the stop.
	Status     StopStatus `json:"status"`      // pending or completed.
	ActualTime *time.Time `json:"actual_time"` // When the driver completed the stop, nil while pending.
}

// Completed reports whether the stop has reached its terminal state.
func (s *RouteStop) Completed() bool {
	return s.Status == StopStatusCompleted
}

// RouteEvent is an append-only tracking event recorded against a route,
// such as a stop completion or an automatic route closure.
type RouteEvent struct {
	ID        uuid.UUID  `json:"id"`         // The Global Unique Identifier (GUID) for the event.
	RouteID   uuid.UUID  `json:"route_id"`   // The route the event belongs to.
	StopID    *uuid.UUID `json:"stop_id"`    // The stop involved, nil for route-level events.
	EventType string     `json:"event_type"` // Event kind (stop_completed, route_started, route_completed, auto_closed).
	Detail    string     `json:"detail"`     // Free-form detail text.
	CreatedAt time.Time  `json:"created_at"` // Timestamp of when the event was appended.
}
