// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrDuplicateNotification is returned when a notification already
	// exists for the same (user, dog, template, due date) tuple.
	ErrDuplicateNotification = errors.New("notification already exists for this due date")
)

// NotificationRepository defines scheduled notification and delivery log
// database operations.
type NotificationRepository interface {
	// CreateNotification persists a scheduled notification. Returns
	// ErrDuplicateNotification when the dedup constraint on
	// (user, dog, template, scheduled date) is violated.
	CreateNotification(ctx context.Context, notification *entity.ScheduledNotification) error

	// NotificationExists reports whether a notification already exists for
	// the (user, dog, template) tuple on the given date.
	NotificationExists(ctx context.Context, userID uuid.UUID, dogID *uuid.UUID, templateKey string, date time.Time) (bool, error)

	// FindPendingNotifications retrieves pending notifications due on or
	// before the given time, oldest first, limited to limit rows.
	FindPendingNotifications(ctx context.Context, dueBy time.Time, limit int) ([]*entity.ScheduledNotification, error)

	// UpdateNotificationStatus records the one-shot delivery outcome.
	UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status entity.NotificationStatus, deliveryStatus string) error

	// BatchCreateNotificationLogs persists delivery attempt logs in a batch.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error
}

// CronLogRepository records cron run summaries.
type CronLogRepository interface {
	// CreateCronLog persists one cron run summary.
	CreateCronLog(ctx context.Context, log *entity.CronLog) error
}
