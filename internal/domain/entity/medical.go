// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicineFrequency is the dosing cadence of a medicine.
type MedicineFrequency string

const (
	FrequencyDaily        MedicineFrequency = "daily"
	FrequencyWeekly       MedicineFrequency = "weekly"
	FrequencyMonthly      MedicineFrequency = "monthly"
	FrequencyEvery2Months MedicineFrequency = "every_2_months"
	FrequencyEvery3Months MedicineFrequency = "every_3_months"
	FrequencyEvery6Months MedicineFrequency = "every_6_months"
	FrequencyAsNeeded     MedicineFrequency = "as_needed"
)

// AdvanceInterval returns the calendar-naive number of days to add to a dose
// date once a reminder for it has fired, and whether the date advances at all.
// Months count as 30 days. as_needed medicines never advance.
func (f MedicineFrequency) AdvanceInterval() (days int, ok bool) {
	switch f {
	case FrequencyDaily:
		return 1, true
	case FrequencyWeekly:
		return 7, true
	case FrequencyMonthly:
		return 30, true
	case FrequencyEvery2Months:
		return 60, true
	case FrequencyEvery3Months:
		return 90, true
	case FrequencyEvery6Months:
		return 180, true
	default:
		return 0, false
	}
}

// DogVaccine is a vaccine record for a dog. Read-only input to the reminder
// evaluator; administered vaccines never generate reminders.
type DogVaccine struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the record.
	DogID        uuid.UUID `json:"dog_id"`        // The dog this vaccine belongs to.
	Name         string    `json:"name"`          // Vaccine name (e.g. "Rabia", "Sextuple").
	NextDueDate  time.Time `json:"next_due_date"` // Date the next dose is due.
	Administered bool      `json:"administered"`  // Whether the due dose was already given.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when this record was created.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of the last modification.
}

// Medicine is a recurring medicine for a dog. NextDoseDate is advanced by the
// evaluator after a reminder fires, according to Frequency.
type Medicine struct {
	ID           uuid.UUID         `json:"id"`             // The Global Unique Identifier (GUID) for the record.
	DogID        uuid.UUID         `json:"dog_id"`         // The dog this medicine belongs to.
	Name         string            `json:"name"`           // Medicine name.
	Dosage       string            `json:"dosage"`         // Dose description, free text.
	Frequency    MedicineFrequency `json:"frequency"`      // Dosing cadence.
	NextDoseDate *time.Time        `json:"next_dose_date"` // Date of the next dose, nil for as_needed.
	IsOngoing    bool              `json:"is_ongoing"`     // Whether the treatment is still active.
	CreatedAt    time.Time         `json:"created_at"`     // Timestamp of when this record was created.
	UpdatedAt    time.Time         `json:"updated_at"`     // Timestamp of the last modification.
}

// Routine is a scheduled daily activity for a dog, reminded at a fixed hour.
type Routine struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the routine.
	DogID     uuid.UUID `json:"dog_id"`     // The dog this routine belongs to.
	Name      string    `json:"name"`       // Routine name (e.g. "Paseo", "Comida").
	Category  string    `json:"category"`   // Routine category, free text.
	Hour      int       `json:"hour"`       // Hour of day (0-23) when the reminder fires.
	Active    bool      `json:"active"`     // Whether the routine is currently scheduled.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// Evaluation is a daily report card for a dog. Publishing one triggers a
// "report ready" notification for the guardian during daily maintenance.
type Evaluation struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the evaluation.
	DogID     uuid.UUID `json:"dog_id"`     // The dog being evaluated.
	Date      time.Time `json:"date"`       // The service date the evaluation covers.
	Mood      string    `json:"mood"`       // Overall mood summary.
	Notes     string    `json:"notes"`      // Teacher notes.
	Published bool      `json:"published"`  // Whether the evaluation is visible to the guardian.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
