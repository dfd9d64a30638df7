package impl

import (
	"context"
	"fmt"
	"log/slog"

	"canino/config"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	"canino/internal/domain/service"
	"canino/internal/usecase"
	"canino/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	etaUnknownText  = "unknown"
	etaArrivingText = "arriving"

	// Within this straight-line distance of the destination the vehicle
	// counts as arrived and no Distance Matrix call is made.
	etaArrivalRadiusM = 75.0
)

type etaService struct {
	logger       *slog.Logger
	locationRepo repository.LocationRepository
	routeRepo    repository.RouteRepository
	estimator    service.RouteEstimator

	school service.Coordinate
}

// NewEtaService creates a new ETA service instance
func NewEtaService(
	logger *slog.Logger,
	cfg *config.Config,
	locationRepo repository.LocationRepository,
	routeRepo repository.RouteRepository,
	estimator service.RouteEstimator,
) usecase.EtaUsecase {
	school := service.Coordinate{}
	if cfg.Maps != nil {
		school.Lat = cfg.Maps.SchoolLatitude
		school.Lng = cfg.Maps.SchoolLongitude
	}

	return &etaService{
		logger:       logger,
		locationRepo: locationRepo,
		routeRepo:    routeRepo,
		estimator:    estimator,
		school:       school,
	}
}

// EstimateToStop estimates driving time from the vehicle's current location
// to one of its route stops.
func (s *etaService) EstimateToStop(ctx context.Context, vehicleID, stopID uuid.UUID) (*usecase.EtaResult, error) {
	stop, err := s.routeRepo.FindStopByID(ctx, stopID)
	if err != nil {
		if errors.Is(err, repository.ErrStopNotFound) {
			return nil, domainerrors.ErrStopNotFound
		}

		return nil, errors.Wrap(err, "failed to load stop")
	}

	return s.estimateFrom(ctx, vehicleID, service.Coordinate{Lat: stop.Latitude, Lng: stop.Longitude})
}

// EstimateToSchool estimates driving time from the vehicle's current
// location to the school.
func (s *etaService) EstimateToSchool(ctx context.Context, vehicleID uuid.UUID) (*usecase.EtaResult, error) {
	return s.estimateFrom(ctx, vehicleID, s.school)
}

func (s *etaService) estimateFrom(ctx context.Context, vehicleID uuid.UUID, destination service.Coordinate) (*usecase.EtaResult, error) {
	current, err := s.locationRepo.FindCurrentLocation(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrNoCurrentLocation
		}

		return nil, errors.Wrap(err, "failed to load current location")
	}

	origin := service.Coordinate{Lat: current.Latitude, Lng: current.Longitude}

	if util.DistanceMeters(origin.Lat, origin.Lng, destination.Lat, destination.Lng) <= etaArrivalRadiusM {
		return &usecase.EtaResult{Known: true, EtaMinutes: 0, EtaText: etaArrivingText}, nil
	}

	estimate, err := s.estimator.Estimate(ctx, origin, destination)
	if err != nil {
		if errors.Is(err, service.ErrRouteUnavailable) {
			s.logger.Warn("Route estimate unavailable",
				slog.String("vehicle_id", vehicleID.String()),
				slog.String("error", err.Error()),
			)

			return &usecase.EtaResult{Known: false, EtaText: etaUnknownText}, nil
		}

		return nil, errors.Wrap(err, "failed to estimate route")
	}

	return &usecase.EtaResult{
		Known:        true,
		EtaMinutes:   estimate.EtaMinutes,
		EtaText:      fmt.Sprintf("%d min", estimate.EtaMinutes),
		DistanceText: estimate.DistanceText,
	}, nil
}
