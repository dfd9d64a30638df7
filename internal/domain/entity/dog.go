// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Dog represents a dog enrolled at the daycare.
type Dog struct {
	ID              uuid.UUID `json:"id"`               // The Global Unique Identifier (GUID) for the dog.
	Name            string    `json:"name"`             // The dog's name.
	Breed           string    `json:"breed"`            // The dog's breed, free text.
	GuardianID      uuid.UUID `json:"guardian_id"`      // Profile ID of the dog's guardian (parent).
	TransportActive bool      `json:"transport_active"` // Whether the dog uses the pickup/dropoff service.
	PickupOrder     int       `json:"pickup_order"`     // Position of the dog's stop within planned routes.
	Active          bool      `json:"active"`           // Whether the dog is currently enrolled.
	CreatedAt       time.Time `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt       time.Time `json:"updated_at"`       // Timestamp of the last modification.
}

// DogAddress is a pickup/dropoff address registered for a dog.
type DogAddress struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the address.
	DogID       uuid.UUID `json:"dog_id"`       // The dog this address belongs to.
	Label       string    `json:"label"`        // Short label (e.g. "Casa", "Oficina").
	FullAddress string    `json:"full_address"` // The full address text.
	Latitude    float64   `json:"latitude"`     // Geographic latitude of the address.
	Longitude   float64   `json:"longitude"`    // Geographic longitude of the address.
	IsPrimary   bool      `json:"is_primary"`   // Whether this is the default transport address.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this record was created.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}
