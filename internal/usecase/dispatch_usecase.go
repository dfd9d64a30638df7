package usecase

import (
	"context"
	"time"

	"canino/internal/domain/service"
)

// DispatchResult summarizes one dispatch run over pending notifications.
type DispatchResult struct {
	Dispatched int      `json:"dispatched"`
	Sent       int      `json:"sent"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors,omitempty"`
}

// DispatchUsecase turns stored notifications into push deliveries.
type DispatchUsecase interface {
	// HandleTransportEvent converts a transport event into a scheduled
	// notification for the dog's guardian and dispatches it immediately.
	// Duplicate events for the same (guardian, dog, template, day) are
	// dropped silently.
	HandleTransportEvent(ctx context.Context, event *service.NotificationEvent) error

	// DispatchPending delivers due pending notifications to each user's
	// active push subscriptions. Each notification gets exactly one
	// delivery attempt: the outcome is recorded and never retried.
	DispatchPending(ctx context.Context, now time.Time) (*DispatchResult, error)
}
