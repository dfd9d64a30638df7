// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVehicleNotFound is returned when a vehicle is not found.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository defines vehicle-related database operations.
type VehicleRepository interface {
	// FindVehicleByID retrieves a vehicle by its unique ID.
	FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)

	// FindActiveVehicles retrieves all vehicles currently in service.
	FindActiveVehicles(ctx context.Context) ([]*entity.Vehicle, error)

	// FindVehicleByDriver retrieves the vehicle assigned to a driver profile.
	FindVehicleByDriver(ctx context.Context, driverID uuid.UUID) (*entity.Vehicle, error)
}
