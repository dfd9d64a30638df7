package service

import (
	"context"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationBroadcaster relays freshly persisted location samples to
// subscribed clients. Delivery is at-most-once per live subscription and
// follows insertion order per publisher; there is no replay, so a consumer
// must re-fetch the current location when it (re)connects and must compare
// RecordedAt timestamps rather than trust arrival order.
type LocationBroadcaster interface {
	// Broadcast publishes one sample to the vehicle's channel. Best-effort:
	// callers log failures and keep going.
	Broadcast(ctx context.Context, location *entity.VehicleLocation) error

	// Subscribe returns a channel of samples for one vehicle and a cancel
	// function releasing the subscription. The channel is closed on cancel
	// or when the broadcaster shuts down.
	Subscribe(ctx context.Context, vehicleID uuid.UUID) (<-chan *entity.VehicleLocation, func(), error)

	// Close releases the broadcaster's resources.
	Close() error
}
