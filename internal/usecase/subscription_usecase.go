package usecase

import (
	"context"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscribeInput registers one browser push subscription, mirroring the
// PushSubscription JSON produced by the service worker.
type SubscribeInput struct {
	Endpoint   string `json:"endpoint" validate:"required,url"`
	P256dh     string `json:"p256dh" validate:"required"`
	Auth       string `json:"auth" validate:"required"`
	DeviceInfo string `json:"device_info"`
}

// SubscriptionUsecase defines push subscription management.
type SubscriptionUsecase interface {
	// Subscribe upserts a subscription by endpoint for the user.
	Subscribe(ctx context.Context, userID uuid.UUID, role entity.Role, input *SubscribeInput) (*entity.PushSubscription, error)

	// Unsubscribe deactivates the user's subscription with the endpoint.
	Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) error

	// GetVAPIDPublicKey exposes the public key the client needs to subscribe.
	GetVAPIDPublicKey() string

	// SendTestNotification pushes a canned payload to all of the user's
	// active subscriptions, for the settings page's "check my setup" button.
	SendTestNotification(ctx context.Context, userID uuid.UUID) error
}
