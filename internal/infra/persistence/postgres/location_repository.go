// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	"canino/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateLocation appends one location sample.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.VehicleLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVehicleNotFound.WrapMessage("invalid vehicle reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	// Update the entity with generated values
	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt

	return nil
}

// FindCurrentLocation returns the sample with the maximum RecordedAt for the
// vehicle. Rows are append-only, so insertion order says nothing about
// recency; the order clause is what defines "current".
func (repo *locationRepository) FindCurrentLocation(ctx context.Context, vehicleID uuid.UUID) (*entity.VehicleLocation, error) {
	var locationM model.VehicleLocationModel

	if err := repo.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("recorded_at DESC").
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find current location")
	}

	return toLocationDomain(&locationM), nil
}

// FindRecentLocations retrieves up to limit samples for the vehicle, newest first.
func (repo *locationRepository) FindRecentLocations(ctx context.Context, vehicleID uuid.UUID, limit int) ([]*entity.VehicleLocation, error) {
	var locationModels []*model.VehicleLocationModel

	query := repo.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("recorded_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent locations")
	}

	locations := make([]*entity.VehicleLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// DeleteLocationsBefore removes samples recorded before the cutoff.
func (repo *locationRepository) DeleteLocationsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("recorded_at < ?", cutoff).
		Delete(&model.VehicleLocationModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete old locations")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM VehicleLocationModel to a domain VehicleLocation entity.
func toLocationDomain(data *model.VehicleLocationModel) *entity.VehicleLocation {
	if data == nil {
		return nil
	}

	return &entity.VehicleLocation{
		ID:         data.ID,
		VehicleID:  data.VehicleID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		HeadingDeg: data.HeadingDeg,
		SpeedKmh:   data.SpeedKmh,
		AccuracyM:  data.AccuracyM,
		IsMoving:   data.IsMoving,
		Source:     entity.LocationSource(data.Source),
		RecordedAt: data.RecordedAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromLocationDomain converts a domain VehicleLocation entity to a GORM VehicleLocationModel.
func fromLocationDomain(data *entity.VehicleLocation) *model.VehicleLocationModel {
	if data == nil {
		return nil
	}

	return &model.VehicleLocationModel{
		ID:         data.ID,
		VehicleID:  data.VehicleID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		HeadingDeg: data.HeadingDeg,
		SpeedKmh:   data.SpeedKmh,
		AccuracyM:  data.AccuracyM,
		IsMoving:   data.IsMoving,
		Source:     string(data.Source),
		RecordedAt: data.RecordedAt,
		CreatedAt:  data.CreatedAt,
	}
}
