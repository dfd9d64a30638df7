// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationSource identifies how a location sample was captured on the driver device.
type LocationSource string

const (
	// LocationSourceManual is a one-shot sample triggered by the driver.
	LocationSourceManual LocationSource = "manual"
	// LocationSourceTimer is a sample produced by a periodic timer.
	LocationSourceTimer LocationSource = "timer"
	// LocationSourceWatch is a sample delivered by the device's continuous watch.
	LocationSourceWatch LocationSource = "watch"
)

// VehicleLocation represents one GPS sample reported for a vehicle.
// Rows are append-only; the sample with the highest RecordedAt is the
// vehicle's current location.
type VehicleLocation struct {
	ID         uuid.UUID      `json:"id"`          // The Global Unique Identifier (GUID) for the sample.
	VehicleID  uuid.UUID      `json:"vehicle_id"`  // The ID of the vehicle that reported this sample.
	Latitude   float64        `json:"latitude"`    // Geographic latitude, normalized to 8 decimal places.
	Longitude  float64        `json:"longitude"`   // Geographic longitude, normalized to 8 decimal places.
	HeadingDeg float64        `json:"heading_deg"` // Compass heading in degrees (0-360), 0 when unknown.
	SpeedKmh   float64        `json:"speed_kmh"`   // Ground speed in km/h (converted from the device's m/s).
	AccuracyM  float64        `json:"accuracy_m"`  // Horizontal accuracy radius in meters.
	IsMoving   bool           `json:"is_moving"`   // Derived flag: speed above the moving threshold.
	Source     LocationSource `json:"source"`      // How the sample was captured (manual, timer, watch).
	RecordedAt time.Time      `json:"recorded_at"` // Device timestamp of the sample.
	CreatedAt  time.Time      `json:"created_at"`  // Timestamp of when this record was persisted.
}
