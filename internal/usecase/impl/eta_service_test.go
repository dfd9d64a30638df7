package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"canino/config"
	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	"canino/internal/domain/service"
	mockRepo "canino/internal/mocks/repository"
	mockSvc "canino/internal/mocks/service"
	"canino/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEtaService(t *testing.T) (
	usecase.EtaUsecase,
	*mockRepo.MockLocationRepository,
	*mockRepo.MockRouteRepository,
	*mockSvc.MockRouteEstimator,
) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	routeRepo := mockRepo.NewMockRouteRepository(t)
	estimator := mockSvc.NewMockRouteEstimator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Maps: &config.MapsConfig{
			SchoolLatitude:  4.701234,
			SchoolLongitude: -74.041234,
		},
	}

	svc := NewEtaService(logger, cfg, locationRepo, routeRepo, estimator)

	return svc, locationRepo, routeRepo, estimator
}

func TestEtaService_EstimateToSchool_Success(t *testing.T) {
	svc, locationRepo, _, estimator := createTestEtaService(t)

	ctx := context.Background()
	vehicleID := uuid.New()

	locationRepo.EXPECT().FindCurrentLocation(ctx, vehicleID).Return(&entity.VehicleLocation{
		VehicleID: vehicleID,
		Latitude:  4.71,
		Longitude: -74.07,
	}, nil)
	estimator.EXPECT().Estimate(ctx,
		service.Coordinate{Lat: 4.71, Lng: -74.07},
		service.Coordinate{Lat: 4.701234, Lng: -74.041234},
	).Return(&service.Estimate{EtaMinutes: 12, DistanceText: "4.2 km", DurationText: "12m0s"}, nil)

	result, err := svc.EstimateToSchool(ctx, vehicleID)

	require.NoError(t, err)
	assert.True(t, result.Known)
	assert.Equal(t, 12, result.EtaMinutes)
	assert.Equal(t, "12 min", result.EtaText)
	assert.Equal(t, "4.2 km", result.DistanceText)
}

func TestEtaService_EstimateToSchool_ArrivedSkipsEstimator(t *testing.T) {
	svc, locationRepo, _, _ := createTestEtaService(t)

	ctx := context.Background()
	vehicleID := uuid.New()

	// A few meters from the school gate; the estimator must not be called.
	locationRepo.EXPECT().FindCurrentLocation(ctx, vehicleID).Return(&entity.VehicleLocation{
		VehicleID: vehicleID,
		Latitude:  4.701240,
		Longitude: -74.041250,
	}, nil)

	result, err := svc.EstimateToSchool(ctx, vehicleID)

	require.NoError(t, err)
	assert.True(t, result.Known)
	assert.Zero(t, result.EtaMinutes)
	assert.Equal(t, "arriving", result.EtaText)
}

func TestEtaService_EstimateToSchool_RouteUnavailable(t *testing.T) {
	svc, locationRepo, _, estimator := createTestEtaService(t)

	ctx := context.Background()
	vehicleID := uuid.New()

	locationRepo.EXPECT().FindCurrentLocation(ctx, vehicleID).Return(&entity.VehicleLocation{
		VehicleID: vehicleID,
		Latitude:  4.71,
		Longitude: -74.07,
	}, nil)
	estimator.EXPECT().Estimate(ctx, mock.Anything, mock.Anything).Return(nil, service.ErrRouteUnavailable)

	result, err := svc.EstimateToSchool(ctx, vehicleID)

	require.NoError(t, err)
	assert.False(t, result.Known)
	assert.Equal(t, "unknown", result.EtaText)
	assert.Zero(t, result.EtaMinutes)
}

func TestEtaService_EstimateToSchool_NoCurrentLocation(t *testing.T) {
	svc, locationRepo, _, _ := createTestEtaService(t)

	ctx := context.Background()
	vehicleID := uuid.New()

	locationRepo.EXPECT().FindCurrentLocation(ctx, vehicleID).Return(nil, repository.ErrLocationNotFound)

	result, err := svc.EstimateToSchool(ctx, vehicleID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrNoCurrentLocation)
}

func TestEtaService_EstimateToStop_Success(t *testing.T) {
	svc, locationRepo, routeRepo, estimator := createTestEtaService(t)

	ctx := context.Background()
	vehicleID := uuid.New()
	stopID := uuid.New()

	routeRepo.EXPECT().FindStopByID(ctx, stopID).Return(&entity.RouteStop{
		ID:        stopID,
		Latitude:  4.65,
		Longitude: -74.06,
	}, nil)
	locationRepo.EXPECT().FindCurrentLocation(ctx, vehicleID).Return(&entity.VehicleLocation{
		VehicleID: vehicleID,
		Latitude:  4.71,
		Longitude: -74.07,
	}, nil)
	estimator.EXPECT().Estimate(ctx,
		service.Coordinate{Lat: 4.71, Lng: -74.07},
		service.Coordinate{Lat: 4.65, Lng: -74.06},
	).Return(&service.Estimate{EtaMinutes: 5, DistanceText: "1.8 km"}, nil)

	result, err := svc.EstimateToStop(ctx, vehicleID, stopID)

	require.NoError(t, err)
	assert.True(t, result.Known)
	assert.Equal(t, 5, result.EtaMinutes)
}

func TestEtaService_EstimateToStop_StopNotFound(t *testing.T) {
	svc, _, routeRepo, _ := createTestEtaService(t)

	ctx := context.Background()
	stopID := uuid.New()

	routeRepo.EXPECT().FindStopByID(ctx, stopID).Return(nil, repository.ErrStopNotFound)

	result, err := svc.EstimateToStop(ctx, uuid.New(), stopID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrStopNotFound)
}
