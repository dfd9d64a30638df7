// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle represents a school transport vehicle.
type Vehicle struct {
	ID           uuid.UUID  `json:"id"`            // The Global Unique Identifier (GUID) for the vehicle.
	LicensePlate string     `json:"license_plate"` // The license plate of the vehicle.
	DriverName   string     `json:"driver_name"`   // Display name of the assigned driver.
	DriverID     *uuid.UUID `json:"driver_id"`     // Optional profile ID of the assigned driver.
	Active       bool       `json:"active"`        // Indicates if the vehicle is in service.
	CreatedAt    time.Time  `json:"created_at"`    // Timestamp of when this record was created.
	UpdatedAt    time.Time  `json:"updated_at"`    // Timestamp of the last modification.
}
