package service

import (
	"context"
	"time"
)

// Transport event types carried by NotificationEvent.
const (
	EventStopCompleted  = "stop_completed"
	EventRouteStarted   = "route_started"
	EventRouteCompleted = "route_completed"
)

// NotificationEvent is the message published to the worker when a transport
// event should turn into a guardian notification. IDs travel as strings so
// the payload survives JSON/Pub/Sub round trips unchanged.
type NotificationEvent struct {
	EventType  string    `json:"event_type"`
	RouteID    string    `json:"route_id"`
	StopID     string    `json:"stop_id,omitempty"`
	RouteType  string    `json:"route_type"`
	DogID      string    `json:"dog_id"`
	DogName    string    `json:"dog_name"`
	GuardianID string    `json:"guardian_id"`
	OccurredAt time.Time `json:"occurred_at"`
	RequestID  string    `json:"request_id,omitempty"`
}

// EventPublisher publishes transport notification events to the worker.
type EventPublisher interface {
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error
	Close() error
}
