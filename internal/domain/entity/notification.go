// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus is the lifecycle state of a scheduled notification.
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// ScheduledNotification is one notification owed to a user, created by the
// reminder evaluator or a transport event. At most one row may exist per
// (user, dog, template, due date) tuple; duplicates within a window are
// rejected at the storage layer.
type ScheduledNotification struct {
	ID             uuid.UUID          `json:"id"`              // The Global Unique Identifier (GUID) for the notification.
	UserID         uuid.UUID          `json:"user_id"`         // The user to notify.
	DogID          *uuid.UUID         `json:"dog_id"`          // The dog the notification is about, nil for system notices.
	TemplateKey    string             `json:"template_key"`    // Key into the notification template registry.
	Variables      map[string]string  `json:"variables"`       // Interpolation variables for the template.
	ScheduledFor   time.Time          `json:"scheduled_for"`   // When the notification becomes due.
	Status         NotificationStatus `json:"status"`          // pending, sent or failed.
	DeliveryStatus string             `json:"delivery_status"` // Summary of the last delivery attempt.
	CreatedAt      time.Time          `json:"created_at"`      // Timestamp of when this record was created.
	UpdatedAt      time.Time          `json:"updated_at"`      // Timestamp of the last modification.
}

// NotificationLog records one push delivery attempt to one subscription.
type NotificationLog struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the log entry.
	NotificationID uuid.UUID `json:"notification_id"` // The scheduled notification this attempt belongs to.
	UserID         uuid.UUID `json:"user_id"`         // The user who owned the target subscription.
	SubscriptionID uuid.UUID `json:"subscription_id"` // The push subscription the payload was sent to.
	Status         string    `json:"status"`          // sent or failed.
	ErrorMessage   string    `json:"error_message"`   // Error text if the delivery failed.
	SentAt         time.Time `json:"sent_at"`         // Timestamp of the delivery attempt.
}

// CronLog is the summary record of one cron job run.
type CronLog struct {
	ID                   uuid.UUID `json:"id"`                    // The Global Unique Identifier (GUID) for the log entry.
	JobName              string    `json:"job_name"`              // Which cron job ran.
	Status               string    `json:"status"`                // completed or failed.
	ItemsProcessed       int       `json:"items_processed"`       // How many due items the run examined.
	NotificationsCreated int       `json:"notifications_created"` // How many notifications the run created.
	ErrorCount           int       `json:"error_count"`           // How many per-item errors were accumulated.
	Details              string    `json:"details"`               // Free-form detail text (first errors, etc).
	StartedAt            time.Time `json:"started_at"`            // When the run started.
	FinishedAt           time.Time `json:"finished_at"`           // When the run finished.
}
