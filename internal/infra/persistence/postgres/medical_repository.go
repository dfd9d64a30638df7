// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"canino/internal/domain/entity"
	"canino/internal/domain/repository"
	"canino/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// medicalRepository implements the repository.MedicalRepository interface.
type medicalRepository struct {
	db *gorm.DB
}

// NewMedicalRepository is the constructor for medicalRepository.
func NewMedicalRepository(db *gorm.DB) repository.MedicalRepository {
	return &medicalRepository{
		db: db,
	}
}

// FindDueVaccines retrieves unadministered vaccines whose next due date falls
// between from and to inclusive.
func (repo *medicalRepository) FindDueVaccines(ctx context.Context, from, to time.Time) ([]*entity.DogVaccine, error) {
	var vaccineModels []*model.DogVaccineModel

	if err := repo.db.WithContext(ctx).
		Where("administered = ? AND next_due_date BETWEEN ? AND ?",
			false, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("next_due_date ASC").
		Find(&vaccineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due vaccines")
	}

	vaccines := make([]*entity.DogVaccine, 0, len(vaccineModels))
	for _, vaccineM := range vaccineModels {
		vaccines = append(vaccines, toVaccineDomain(vaccineM))
	}

	return vaccines, nil
}

// FindDueMedicines retrieves ongoing medicines whose next dose date is on or
// before the given date. Medicines without a dose date (as needed) never match.
func (repo *medicalRepository) FindDueMedicines(ctx context.Context, dueBy time.Time) ([]*entity.Medicine, error) {
	var medicineModels []*model.MedicineModel

	if err := repo.db.WithContext(ctx).
		Where("is_ongoing = ? AND next_dose_date IS NOT NULL AND next_dose_date <= ?",
			true, dueBy.Format("2006-01-02")).
		Order("next_dose_date ASC").
		Find(&medicineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due medicines")
	}

	medicines := make([]*entity.Medicine, 0, len(medicineModels))
	for _, medicineM := range medicineModels {
		medicines = append(medicines, toMedicineDomain(medicineM))
	}

	return medicines, nil
}

// UpdateMedicineNextDose sets a medicine's next dose date.
func (repo *medicalRepository) UpdateMedicineNextDose(ctx context.Context, medicineID uuid.UUID, next time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MedicineModel{}).
		Where("id = ?", medicineID).
		Update("next_dose_date", next.Format("2006-01-02"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update medicine next dose")
	}

	if result.RowsAffected == 0 {
		return errors.New("medicine not found")
	}

	return nil
}

// FindRoutinesByHour retrieves active routines scheduled for the hour.
func (repo *medicalRepository) FindRoutinesByHour(ctx context.Context, hour int) ([]*entity.Routine, error) {
	var routineModels []*model.RoutineModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND hour = ?", true, hour).
		Find(&routineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find routines by hour")
	}

	routines := make([]*entity.Routine, 0, len(routineModels))
	for _, routineM := range routineModels {
		routines = append(routines, toRoutineDomain(routineM))
	}

	return routines, nil
}

// --- Mapper Functions ---

// toVaccineDomain converts a GORM DogVaccineModel to a domain DogVaccine entity.
func toVaccineDomain(data *model.DogVaccineModel) *entity.DogVaccine {
	if data == nil {
		return nil
	}

	return &entity.DogVaccine{
		ID:           data.ID,
		DogID:        data.DogID,
		Name:         data.Name,
		NextDueDate:  data.NextDueDate,
		Administered: data.Administered,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toMedicineDomain converts a GORM MedicineModel to a domain Medicine entity.
func toMedicineDomain(data *model.MedicineModel) *entity.Medicine {
	if data == nil {
		return nil
	}

	return &entity.Medicine{
		ID:           data.ID,
		DogID:        data.DogID,
		Name:         data.Name,
		Dosage:       data.Dosage,
		Frequency:    entity.MedicineFrequency(data.Frequency),
		NextDoseDate: data.NextDoseDate,
		IsOngoing:    data.IsOngoing,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toRoutineDomain converts a GORM RoutineModel to a domain Routine entity.
func toRoutineDomain(data *model.RoutineModel) *entity.Routine {
	if data == nil {
		return nil
	}

	return &entity.Routine{
		ID:        data.ID,
		DogID:     data.DogID,
		Name:      data.Name,
		Category:  data.Category,
		Hour:      data.Hour,
		Active:    data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
