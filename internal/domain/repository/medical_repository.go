// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicalRepository defines the due-item queries feeding the reminder
// evaluator. Vaccines are read-only; medicine dose dates are advanced after
// a reminder fires.
type MedicalRepository interface {
	// FindDueVaccines retrieves unadministered vaccines whose next due date
	// falls between from and to inclusive.
	FindDueVaccines(ctx context.Context, from, to time.Time) ([]*entity.DogVaccine, error)

	// FindDueMedicines retrieves ongoing medicines whose next dose date is
	// on or before the given date.
	FindDueMedicines(ctx context.Context, dueBy time.Time) ([]*entity.Medicine, error)

	// UpdateMedicineNextDose sets a medicine's next dose date.
	UpdateMedicineNextDose(ctx context.Context, medicineID uuid.UUID, next time.Time) error

	// FindRoutinesByHour retrieves active routines scheduled for the hour.
	FindRoutinesByHour(ctx context.Context, hour int) ([]*entity.Routine, error)
}
