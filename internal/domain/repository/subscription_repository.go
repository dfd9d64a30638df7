// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a push subscription is not found.
var ErrSubscriptionNotFound = errors.New("push subscription not found")

// SubscriptionRepository defines push subscription database operations.
type SubscriptionRepository interface {
	// UpsertSubscription persists a subscription by endpoint: a known
	// endpoint is reactivated and rebound to the user, a new one inserted.
	UpsertSubscription(ctx context.Context, sub *entity.PushSubscription) error

	// FindActiveSubscriptionsByUser retrieves a user's active subscriptions.
	FindActiveSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error)

	// DeactivateSubscription marks one subscription inactive, typically
	// after the push service reported the endpoint gone.
	DeactivateSubscription(ctx context.Context, id uuid.UUID) error

	// DeactivateSubscriptionByEndpoint marks the subscription with the given
	// endpoint inactive. Used by the unsubscribe endpoint.
	DeactivateSubscriptionByEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) error

	// TouchSubscription updates LastUsedAt after a successful delivery.
	TouchSubscription(ctx context.Context, id uuid.UUID, at time.Time) error

	// DeactivateSubscriptionsUnusedSince marks subscriptions inactive whose
	// last use predates the cutoff, returning how many changed.
	DeactivateSubscriptionsUnusedSince(ctx context.Context, cutoff time.Time) (int64, error)
}
