package model

import (
	"time"

	"github.com/google/uuid"
)

// DogVaccineModel is the GORM-specific struct for the 'dog_vaccines' table.
type DogVaccineModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DogID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:text;not null"`
	NextDueDate  time.Time `gorm:"type:date;not null;index"`
	Administered bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DogVaccineModel) TableName() string {
	return "dog_vaccines"
}

// MedicineModel is the GORM-specific struct for the 'medicines' table.
type MedicineModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DogID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name         string     `gorm:"type:text;not null"`
	Dosage       string     `gorm:"type:text"`
	Frequency    string     `gorm:"type:text;not null"`
	NextDoseDate *time.Time `gorm:"type:date;index"`
	IsOngoing    bool       `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MedicineModel) TableName() string {
	return "medicines"
}

// RoutineModel is the GORM-specific struct for the 'routines' table.
type RoutineModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DogID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:text;not null"`
	Category  string    `gorm:"type:text"`
	Hour      int       `gorm:"not null;check:hour >= 0 AND hour <= 23"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoutineModel) TableName() string {
	return "routines"
}
