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

// dogRepository implements the repository.DogRepository interface.
type dogRepository struct {
	db *gorm.DB
}

// NewDogRepository is the constructor for dogRepository.
func NewDogRepository(db *gorm.DB) repository.DogRepository {
	return &dogRepository{
		db: db,
	}
}

// FindDogByID retrieves a dog by its unique ID.
func (repo *dogRepository) FindDogByID(ctx context.Context, id uuid.UUID) (*entity.Dog, error) {
	var dogM model.DogModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDogNotFound
		}

		return nil, errors.Wrap(err, "failed to find dog by ID")
	}

	return toDogDomain(&dogM), nil
}

// FindDogsByGuardian retrieves all active dogs of a guardian.
func (repo *dogRepository) FindDogsByGuardian(ctx context.Context, guardianID uuid.UUID) ([]*entity.Dog, error) {
	var dogModels []*model.DogModel

	if err := repo.db.WithContext(ctx).
		Where("guardian_id = ? AND is_active = ?", guardianID, true).
		Order("name ASC").
		Find(&dogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dogs by guardian")
	}

	dogs := make([]*entity.Dog, 0, len(dogModels))
	for _, dogM := range dogModels {
		dogs = append(dogs, toDogDomain(dogM))
	}

	return dogs, nil
}

// FindTransportDogs retrieves active dogs enrolled in the transport service,
// ordered by pickup order.
func (repo *dogRepository) FindTransportDogs(ctx context.Context) ([]*entity.Dog, error) {
	var dogModels []*model.DogModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND transport_active = ?", true, true).
		Order("pickup_order ASC").
		Find(&dogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find transport dogs")
	}

	dogs := make([]*entity.Dog, 0, len(dogModels))
	for _, dogM := range dogModels {
		dogs = append(dogs, toDogDomain(dogM))
	}

	return dogs, nil
}

// FindPrimaryAddress retrieves the dog's primary transport address.
func (repo *dogRepository) FindPrimaryAddress(ctx context.Context, dogID uuid.UUID) (*entity.DogAddress, error) {
	var addressM model.DogAddressModel

	if err := repo.db.WithContext(ctx).
		Where("dog_id = ? AND is_primary = ?", dogID, true).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDogAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find primary address")
	}

	return toDogAddressDomain(&addressM), nil
}

// FindEvaluationsPublishedOn retrieves evaluations published for the given service date.
func (repo *dogRepository) FindEvaluationsPublishedOn(ctx context.Context, date time.Time) ([]*entity.Evaluation, error) {
	var evaluationModels []*model.EvaluationModel

	if err := repo.db.WithContext(ctx).
		Where("date = ? AND published = ?", date.Format("2006-01-02"), true).
		Find(&evaluationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find published evaluations")
	}

	evaluations := make([]*entity.Evaluation, 0, len(evaluationModels))
	for _, evaluationM := range evaluationModels {
		evaluations = append(evaluations, toEvaluationDomain(evaluationM))
	}

	return evaluations, nil
}

// --- Mapper Functions ---

// toDogDomain converts a GORM DogModel to a domain Dog entity.
func toDogDomain(data *model.DogModel) *entity.Dog {
	if data == nil {
		return nil
	}

	return &entity.Dog{
		ID:              data.ID,
		Name:            data.Name,
		Breed:           data.Breed,
		GuardianID:      data.GuardianID,
		TransportActive: data.TransportActive,
		PickupOrder:     data.PickupOrder,
		Active:          data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toDogAddressDomain converts a GORM DogAddressModel to a domain DogAddress entity.
func toDogAddressDomain(data *model.DogAddressModel) *entity.DogAddress {
	if data == nil {
		return nil
	}

	return &entity.DogAddress{
		ID:          data.ID,
		DogID:       data.DogID,
		Label:       data.Label,
		FullAddress: data.FullAddress,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		IsPrimary:   data.IsPrimary,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toEvaluationDomain converts a GORM EvaluationModel to a domain Evaluation entity.
func toEvaluationDomain(data *model.EvaluationModel) *entity.Evaluation {
	if data == nil {
		return nil
	}

	return &entity.Evaluation{
		ID:        data.ID,
		DogID:     data.DogID,
		Date:      data.Date,
		Mood:      data.Mood,
		Notes:     data.Notes,
		Published: data.Published,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
