// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"
	"time"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportLocationInput is one GPS sample as sent by the driver device.
// Speed arrives in m/s, the unit of the browser geolocation API; it is
// normalized to km/h before persisting.
type ReportLocationInput struct {
	VehicleID  uuid.UUID `json:"vehicle_id" validate:"required"`
	Latitude   float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude  float64   `json:"longitude" validate:"gte=-180,lte=180"`
	HeadingDeg float64   `json:"heading_deg" validate:"gte=0,lt=360"`
	SpeedMs    float64   `json:"speed_ms"`
	AccuracyM  float64   `json:"accuracy_m" validate:"gte=0"`
	Source     string    `json:"source" validate:"omitempty,oneof=manual timer watch"`
	RecordedAt time.Time `json:"recorded_at"`
}

// TrackingUsecase defines the vehicle location pipeline use cases.
type TrackingUsecase interface {
	// ReportLocation normalizes and persists one sample, then relays it to
	// live subscribers. The driver must be assigned to the vehicle.
	ReportLocation(ctx context.Context, driverID uuid.UUID, input *ReportLocationInput) (*entity.VehicleLocation, error)

	// GetCurrentLocation returns the vehicle's most recent sample by
	// RecordedAt.
	GetCurrentLocation(ctx context.Context, vehicleID uuid.UUID) (*entity.VehicleLocation, error)

	// GetRecentLocations returns the newest samples, newest first.
	GetRecentLocations(ctx context.Context, vehicleID uuid.UUID, limit int) ([]*entity.VehicleLocation, error)

	// StreamLocations subscribes to the vehicle's live samples. The cancel
	// function must be called when the consumer disconnects.
	StreamLocations(ctx context.Context, vehicleID uuid.UUID) (<-chan *entity.VehicleLocation, func(), error)

	// ListActiveVehicles returns the vehicles currently in service.
	ListActiveVehicles(ctx context.Context) ([]*entity.Vehicle, error)

	// GenerateTrackingQR renders the QR code for a vehicle's public
	// tracking page.
	GenerateTrackingQR(ctx context.Context, vehicleID uuid.UUID) ([]byte, error)
}
