// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the portal role assigned to a profile.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
	RoleDriver  Role = "driver"
)

// Profile represents a portal account. Accounts are provisioned by the
// school admin; there is no self-service registration.
type Profile struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the profile.
	Email        string    `json:"email"`      // Login email, unique.
	FullName     string    `json:"full_name"`  // Display name.
	Phone        string    `json:"phone"`      // Contact phone number.
	Role         Role      `json:"role"`       // Portal role (admin, teacher, parent, driver).
	PasswordHash string    `json:"-"`          // bcrypt hash of the login password.
	Active       bool      `json:"active"`     // Whether the account can log in.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}
