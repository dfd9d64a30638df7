// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is one browser push endpoint registered by a user device.
// Endpoint plus the p256dh/auth key pair is the standard Web Push
// subscription shape; the endpoint is unique across users.
type PushSubscription struct {
	ID         uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the subscription.
	UserID     uuid.UUID `json:"user_id"`      // The user who opted in on this device.
	UserRole   Role      `json:"user_role"`    // Role of the user at subscription time.
	Endpoint   string    `json:"endpoint"`     // Push service endpoint URL.
	P256dh     string    `json:"p256dh"`       // Client public key (p256dh), base64url.
	Auth       string    `json:"auth"`         // Client auth secret, base64url.
	DeviceInfo string    `json:"device_info"`  // Free-form device description from the client.
	Active     bool      `json:"active"`       // False once the endpoint is gone (410) or expired.
	CreatedAt  time.Time `json:"created_at"`   // Timestamp of when the subscription was registered.
	LastUsedAt time.Time `json:"last_used_at"` // Timestamp of the last successful delivery.
}
