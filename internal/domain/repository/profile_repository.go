// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines portal account database operations.
type ProfileRepository interface {
	// FindProfileByID retrieves a profile by its unique ID.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindProfileByEmail retrieves a profile by login email.
	FindProfileByEmail(ctx context.Context, email string) (*entity.Profile, error)
}
