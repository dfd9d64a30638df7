package model

import (
	"time"

	"github.com/google/uuid"
)

// DogModel is the GORM-specific struct for the 'dogs' table.
type DogModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:text;not null"`
	Breed           string    `gorm:"type:text"`
	GuardianID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TransportActive bool      `gorm:"not null;default:false"`
	PickupOrder     int       `gorm:"not null;default:0"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DogModel) TableName() string {
	return "dogs"
}

// DogAddressModel is the GORM-specific struct for the 'dog_addresses' table.
type DogAddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DogID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Label       string    `gorm:"type:text;not null"`
	FullAddress string    `gorm:"type:text;not null"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	IsPrimary   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DogAddressModel) TableName() string {
	return "dog_addresses"
}

// EvaluationModel is the GORM-specific struct for the 'evaluations' table.
type EvaluationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DogID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null;index"`
	Mood      string    `gorm:"type:text"`
	Notes     string    `gorm:"type:text"`
	Published bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EvaluationModel) TableName() string {
	return "evaluations"
}
