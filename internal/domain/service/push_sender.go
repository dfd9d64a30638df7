// Package service defines domain service interfaces implemented by infra.
package service

import (
	"context"
	"errors"

	"canino/internal/domain/entity"
)

// ErrSubscriptionGone is returned when the push service reports the
// endpoint expired or unsubscribed (404/410). The subscription must be
// deactivated, never retried.
var ErrSubscriptionGone = errors.New("push subscription gone")

// PushPayload is the Web Push notification payload, serialized as JSON for
// the service worker on the client.
type PushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Icon  string            `json:"icon,omitempty"`
	Badge string            `json:"badge,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// PushSender delivers one payload to one subscription endpoint. Delivery is
// fire-and-forget: a failure is reported per subscription and never retried
// by the sender.
type PushSender interface {
	Send(ctx context.Context, sub *entity.PushSubscription, payload *PushPayload) error
}

// MobilePushSender delivers a notification to a native device token. The
// implementation is optional; a nil service means the mobile channel is not
// configured.
type MobilePushSender interface {
	SendToToken(ctx context.Context, token, title, body string, data map[string]string) error
}
