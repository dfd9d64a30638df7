package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// Accounts are provisioned by the school admin, never self-registered.
type ProfileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	FullName     string    `gorm:"type:text;not null"`
	Phone        string    `gorm:"type:text"`
	Role         string    `gorm:"type:text;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
