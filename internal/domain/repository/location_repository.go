// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a vehicle has no recorded location.
var ErrLocationNotFound = errors.New("vehicle location not found")

// LocationRepository defines vehicle location persistence. The table is
// append-only; "current" always means the row with the highest RecordedAt,
// regardless of insertion order.
type LocationRepository interface {
	// CreateLocation appends one location sample.
	CreateLocation(ctx context.Context, location *entity.VehicleLocation) error

	// FindCurrentLocation returns the sample with the maximum RecordedAt for
	// the vehicle, or ErrLocationNotFound when none exists.
	FindCurrentLocation(ctx context.Context, vehicleID uuid.UUID) (*entity.VehicleLocation, error)

	// FindRecentLocations returns up to limit samples for the vehicle,
	// newest first.
	FindRecentLocations(ctx context.Context, vehicleID uuid.UUID, limit int) ([]*entity.VehicleLocation, error)

	// DeleteLocationsBefore removes samples recorded before the cutoff and
	// returns the number of rows removed. Used by daily maintenance.
	DeleteLocationsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
