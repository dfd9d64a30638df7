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

// routeRepository implements the repository.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{
		db: db,
	}
}

// CreateRoute persists a route together with its ordered stops.
func (repo *routeRepository) CreateRoute(ctx context.Context, route *entity.TransportRoute) error {
	routeM := fromRouteDomain(route)

	if err := repo.db.WithContext(ctx).Create(routeM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRoute
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid vehicle or dog reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required route information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create route")
	}

	// Update the entity with generated values
	route.ID = routeM.ID
	route.CreatedAt = routeM.CreatedAt
	route.UpdatedAt = routeM.UpdatedAt
	for i := range routeM.Stops {
		route.Stops[i].ID = routeM.Stops[i].ID
		route.Stops[i].RouteID = routeM.Stops[i].RouteID
	}

	return nil
}

// FindRouteByID retrieves a route with its stops.
func (repo *routeRepository) FindRouteByID(ctx context.Context, id uuid.UUID) (*entity.TransportRoute, error) {
	var routeM model.TransportRouteModel

	if err := repo.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("route_stops.stop_order ASC")
		}).
		Where("id = ?", id).
		First(&routeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find route by ID")
	}

	return toRouteDomain(&routeM), nil
}

// FindRoutesByDate retrieves all routes for a service date, with stops.
func (repo *routeRepository) FindRoutesByDate(ctx context.Context, date time.Time) ([]*entity.TransportRoute, error) {
	var routeModels []*model.TransportRouteModel

	if err := repo.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("route_stops.stop_order ASC")
		}).
		Where("date = ?", date.Format("2006-01-02")).
		Order("route_type ASC").
		Find(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find routes by date")
	}

	routes := make([]*entity.TransportRoute, 0, len(routeModels))
	for _, routeM := range routeModels {
		routes = append(routes, toRouteDomain(routeM))
	}

	return routes, nil
}

// FindRoutesByVehicleAndDate retrieves a vehicle's routes for a date.
func (repo *routeRepository) FindRoutesByVehicleAndDate(ctx context.Context, vehicleID uuid.UUID, date time.Time) ([]*entity.TransportRoute, error) {
	var routeModels []*model.TransportRouteModel

	if err := repo.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("route_stops.stop_order ASC")
		}).
		Where("vehicle_id = ? AND date = ?", vehicleID, date.Format("2006-01-02")).
		Order("route_type ASC").
		Find(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find routes by vehicle and date")
	}

	routes := make([]*entity.TransportRoute, 0, len(routeModels))
	for _, routeM := range routeModels {
		routes = append(routes, toRouteDomain(routeM))
	}

	return routes, nil
}

// UpdateRouteStatus transitions a route's lifecycle status.
func (repo *routeRepository) UpdateRouteStatus(ctx context.Context, id uuid.UUID, status entity.RouteStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransportRouteModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update route status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRouteNotFound
	}

	return nil
}

// FindStopByID retrieves a single stop.
func (repo *routeRepository) FindStopByID(ctx context.Context, id uuid.UUID) (*entity.RouteStop, error) {
	var stopM model.RouteStopModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&stopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStopNotFound
		}

		return nil, errors.Wrap(err, "failed to find stop by ID")
	}

	stop := toStopDomain(&stopM)

	return &stop, nil
}

// CompleteStop marks a pending stop completed at the given time. The WHERE
// clause conditions the update on status = 'pending', which makes repeated
// calls idempotent: a stop that is already completed is left untouched and
// the method reports that no row changed.
func (repo *routeRepository) CompleteStop(ctx context.Context, stopID uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RouteStopModel{}).
		Where("id = ? AND status = ?", stopID, string(entity.StopStatusPending)).
		Updates(map[string]interface{}{
			"status":      string(entity.StopStatusCompleted),
			"actual_time": at,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to complete stop")
	}

	return result.RowsAffected > 0, nil
}

// CountPendingStops returns how many of a route's stops are still pending.
func (repo *routeRepository) CountPendingStops(ctx context.Context, routeID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RouteStopModel{}).
		Where("route_id = ? AND status = ?", routeID, string(entity.StopStatusPending)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pending stops")
	}

	return count, nil
}

// AppendRouteEvent appends a tracking event for a route.
func (repo *routeRepository) AppendRouteEvent(ctx context.Context, event *entity.RouteEvent) error {
	eventM := fromRouteEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRouteNotFound.WrapMessage("invalid route reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append route event")
	}

	// Update the entity with generated values
	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindStaleActiveRoutes returns routes still planned or active whose service
// date is before the given date.
func (repo *routeRepository) FindStaleActiveRoutes(ctx context.Context, before time.Time) ([]*entity.TransportRoute, error) {
	var routeModels []*model.TransportRouteModel

	if err := repo.db.WithContext(ctx).
		Where("date < ? AND status IN ?", before.Format("2006-01-02"),
			[]string{string(entity.RouteStatusPlanned), string(entity.RouteStatusActive)}).
		Order("date ASC").
		Find(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stale active routes")
	}

	routes := make([]*entity.TransportRoute, 0, len(routeModels))
	for _, routeM := range routeModels {
		routes = append(routes, toRouteDomain(routeM))
	}

	return routes, nil
}

// --- Mapper Functions ---

// toRouteDomain converts a GORM TransportRouteModel to a domain TransportRoute entity.
func toRouteDomain(data *model.TransportRouteModel) *entity.TransportRoute {
	if data == nil {
		return nil
	}

	stops := make([]entity.RouteStop, 0, len(data.Stops))
	for i := range data.Stops {
		stops = append(stops, toStopDomain(&data.Stops[i]))
	}

	return &entity.TransportRoute{
		ID:        data.ID,
		VehicleID: data.VehicleID,
		Date:      data.Date,
		RouteType: entity.RouteType(data.RouteType),
		Status:    entity.RouteStatus(data.Status),
		Stops:     stops,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRouteDomain converts a domain TransportRoute entity to a GORM TransportRouteModel.
func fromRouteDomain(data *entity.TransportRoute) *model.TransportRouteModel {
	if data == nil {
		return nil
	}

	stops := make([]model.RouteStopModel, 0, len(data.Stops))
	for i := range data.Stops {
		stops = append(stops, fromStopDomain(&data.Stops[i]))
	}

	return &model.TransportRouteModel{
		ID:        data.ID,
		VehicleID: data.VehicleID,
		Date:      data.Date,
		RouteType: string(data.RouteType),
		Status:    string(data.Status),
		Stops:     stops,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toStopDomain converts a GORM RouteStopModel to a domain RouteStop entity.
func toStopDomain(data *model.RouteStopModel) entity.RouteStop {
	return entity.RouteStop{
		ID:         data.ID,
		RouteID:    data.RouteID,
		DogID:      data.DogID,
		StopOrder:  data.StopOrder,
		Address:    data.Address,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Status:     entity.StopStatus(data.Status),
		ActualTime: data.ActualTime,
	}
}

// fromStopDomain converts a domain RouteStop entity to a GORM RouteStopModel.
func fromStopDomain(data *entity.RouteStop) model.RouteStopModel {
	return model.RouteStopModel{
		ID:         data.ID,
		RouteID:    data.RouteID,
		DogID:      data.DogID,
		StopOrder:  data.StopOrder,
		Address:    data.Address,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Status:     string(data.Status),
		ActualTime: data.ActualTime,
	}
}

// fromRouteEventDomain converts a domain RouteEvent entity to a GORM RouteEventModel.
func fromRouteEventDomain(data *entity.RouteEvent) *model.RouteEventModel {
	if data == nil {
		return nil
	}

	return &model.RouteEventModel{
		ID:        data.ID,
		RouteID:   data.RouteID,
		StopID:    data.StopID,
		EventType: data.EventType,
		Detail:    data.Detail,
		CreatedAt: data.CreatedAt,
	}
}
