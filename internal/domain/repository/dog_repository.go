// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for dog persistence.
var (
	// ErrDogNotFound is returned when a dog is not found.
	ErrDogNotFound = errors.New("dog not found")
	// ErrDogAddressNotFound is returned when a dog has no matching address.
	ErrDogAddressNotFound = errors.New("dog address not found")
)

// DogRepository defines dog and dog-address database operations.
type DogRepository interface {
	// FindDogByID retrieves a dog by its unique ID.
	FindDogByID(ctx context.Context, id uuid.UUID) (*entity.Dog, error)

	// FindDogsByGuardian retrieves all active dogs of a guardian.
	FindDogsByGuardian(ctx context.Context, guardianID uuid.UUID) ([]*entity.Dog, error)

	// FindTransportDogs retrieves active dogs enrolled in the transport
	// service, ordered by pickup order.
	FindTransportDogs(ctx context.Context) ([]*entity.Dog, error)

	// FindPrimaryAddress retrieves the dog's primary transport address, or
	// ErrDogAddressNotFound when none is registered.
	FindPrimaryAddress(ctx context.Context, dogID uuid.UUID) (*entity.DogAddress, error)

	// FindEvaluationsPublishedOn retrieves evaluations published for the
	// given service date. Used by daily maintenance.
	FindEvaluationsPublishedOn(ctx context.Context, date time.Time) ([]*entity.Evaluation, error)
}
