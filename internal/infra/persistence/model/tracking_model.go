// Package model contains GORM-specific structs that map domain entities to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// VehicleModel is the GORM-specific struct for the 'vehicles' table.
type VehicleModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LicensePlate string     `gorm:"type:text;not null;uniqueIndex"`
	DriverName   string     `gorm:"type:text;not null"`
	DriverID     *uuid.UUID `gorm:"type:uuid;index"`
	IsActive     bool       `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}

// VehicleLocationModel is the GORM-specific struct for the 'vehicle_locations' table.
// Rows are append-only; the row with the highest recorded_at is the current location.
type VehicleLocationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VehicleID  uuid.UUID `gorm:"type:uuid;not null;index:idx_vehicle_locations_vehicle_recorded,priority:1"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null"`
	HeadingDeg float64   `gorm:"type:decimal(5,2);not null;default:0"`
	SpeedKmh   float64   `gorm:"type:decimal(6,2);not null;default:0"`
	AccuracyM  float64   `gorm:"type:decimal(8,2);not null;default:0"`
	IsMoving   bool      `gorm:"not null;default:false"`
	Source     string    `gorm:"type:text;not null;default:'manual'"`
	RecordedAt time.Time `gorm:"not null;index:idx_vehicle_locations_vehicle_recorded,priority:2,sort:desc"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleLocationModel) TableName() string {
	return "vehicle_locations"
}
