package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscriptionModel is the GORM-specific struct for the 'push_subscriptions' table.
// The endpoint is unique across users; re-registering an endpoint rebinds it.
type PushSubscriptionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	UserRole   string    `gorm:"type:text;not null"`
	Endpoint   string    `gorm:"type:text;not null;uniqueIndex"`
	P256dh     string    `gorm:"type:text;not null"`
	Auth       string    `gorm:"type:text;not null"`
	DeviceInfo string    `gorm:"type:text"`
	IsActive   bool      `gorm:"not null;default:true;index"`
	CreatedAt  time.Time
	LastUsedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
