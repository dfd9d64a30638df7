package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledNotificationModel is the GORM-specific struct for the
// 'scheduled_notifications' table. ScheduledDate mirrors scheduled_for's
// date component so the unique index can deduplicate per calendar day.
type ScheduledNotificationModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_notifications_dedup,priority:1"`
	DogID          *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_notifications_dedup,priority:2"`
	TemplateKey    string     `gorm:"type:text;not null;uniqueIndex:idx_notifications_dedup,priority:3"`
	Variables      []byte     `gorm:"type:jsonb"`
	ScheduledFor   time.Time  `gorm:"not null;index"`
	ScheduledDate  time.Time  `gorm:"type:date;not null;uniqueIndex:idx_notifications_dedup,priority:4"`
	Status         string     `gorm:"type:text;not null;default:'pending';index"`
	DeliveryStatus string     `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduledNotificationModel) TableName() string {
	return "scheduled_notifications"
}

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// One row per push delivery attempt to one subscription.
type NotificationLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:text;not null;default:'sent'"`
	ErrorMessage   string    `gorm:"type:text"`
	SentAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}

// CronLogModel is the GORM-specific struct for the 'cron_logs' table.
type CronLogModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	JobName              string    `gorm:"type:text;not null;index"`
	Status               string    `gorm:"type:text;not null"`
	ItemsProcessed       int       `gorm:"not null;default:0"`
	NotificationsCreated int       `gorm:"not null;default:0"`
	ErrorCount           int       `gorm:"not null;default:0"`
	Details              string    `gorm:"type:text"`
	StartedAt            time.Time
	FinishedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (CronLogModel) TableName() string {
	return "cron_logs"
}
