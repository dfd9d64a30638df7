package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"canino/config"
	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	mockRepo "canino/internal/mocks/repository"
	mockSvc "canino/internal/mocks/service"
	"canino/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTrackingService(t *testing.T) (
	usecase.TrackingUsecase,
	*mockRepo.MockVehicleRepository,
	*mockRepo.MockLocationRepository,
	*mockSvc.MockLocationBroadcaster,
	*mockSvc.MockQRCodeService,
) {
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	broadcaster := mockSvc.NewMockLocationBroadcaster(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Tracking: &config.TrackingConfig{
			MovingThresholdKmh: 1.0,
			RecentLimit:        50,
		},
	}

	service := NewTrackingService(logger, cfg, vehicleRepo, locationRepo, broadcaster, qrcodeSvc)

	return service, vehicleRepo, locationRepo, broadcaster, qrcodeSvc
}

func testVehicle(driverID uuid.UUID) *entity.Vehicle {
	return &entity.Vehicle{
		ID:           uuid.New(),
		LicensePlate: "ABC-123",
		DriverName:   "Carlos",
		DriverID:     &driverID,
		Active:       true,
	}
}

func TestTrackingService_ReportLocation_Success(t *testing.T) {
	service, vehicleRepo, locationRepo, broadcaster, _ := createTestTrackingService(t)

	ctx := context.Background()
	driverID := uuid.New()
	vehicle := testVehicle(driverID)

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)

	var saved *entity.VehicleLocation
	locationRepo.EXPECT().CreateLocation(ctx, mock.Anything).Run(func(_ context.Context, location *entity.VehicleLocation) {
		saved = location
	}).Return(nil)
	broadcaster.EXPECT().Broadcast(ctx, mock.Anything).Return(nil)

	location, err := service.ReportLocation(ctx, driverID, &usecase.ReportLocationInput{
		VehicleID: vehicle.ID,
		Latitude:  4.711234567891,
		Longitude: -74.072345678912,
		SpeedMs:   5.0,
	})

	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, saved, location)
	assert.InDelta(t, 4.71123457, location.Latitude, 1e-9)
	assert.InDelta(t, -74.07234568, location.Longitude, 1e-9)
	assert.InDelta(t, 18.0, location.SpeedKmh, 1e-9)
	assert.True(t, location.IsMoving)
	assert.Equal(t, entity.LocationSourceManual, location.Source)
	assert.False(t, location.RecordedAt.IsZero())
}

func TestTrackingService_ReportLocation_StationarySample(t *testing.T) {
	service, vehicleRepo, locationRepo, broadcaster, _ := createTestTrackingService(t)

	ctx := context.Background()
	driverID := uuid.New()
	vehicle := testVehicle(driverID)
	recordedAt := time.Now().Add(-time.Minute)

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	locationRepo.EXPECT().CreateLocation(ctx, mock.Anything).Return(nil)
	broadcaster.EXPECT().Broadcast(ctx, mock.Anything).Return(nil)

	location, err := service.ReportLocation(ctx, driverID, &usecase.ReportLocationInput{
		VehicleID:  vehicle.ID,
		Latitude:   4.7,
		Longitude:  -74.1,
		SpeedMs:    0.2,
		Source:     "watch",
		RecordedAt: recordedAt,
	})

	require.NoError(t, err)
	assert.False(t, location.IsMoving)
	assert.Equal(t, entity.LocationSourceWatch, location.Source)
	assert.Equal(t, recordedAt, location.RecordedAt)
}

func TestTrackingService_ReportLocation_InvalidCoordinates(t *testing.T) {
	service, _, _, _, _ := createTestTrackingService(t)

	location, err := service.ReportLocation(context.Background(), uuid.New(), &usecase.ReportLocationInput{
		VehicleID: uuid.New(),
		Latitude:  91.0,
		Longitude: 0.0,
	})

	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestTrackingService_ReportLocation_WrongDriver(t *testing.T) {
	service, vehicleRepo, _, _, _ := createTestTrackingService(t)

	ctx := context.Background()
	vehicle := testVehicle(uuid.New())

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)

	location, err := service.ReportLocation(ctx, uuid.New(), &usecase.ReportLocationInput{
		VehicleID: vehicle.ID,
		Latitude:  4.7,
		Longitude: -74.1,
	})

	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTrackingService_ReportLocation_BroadcastFailureIsSwallowed(t *testing.T) {
	service, vehicleRepo, locationRepo, broadcaster, _ := createTestTrackingService(t)

	ctx := context.Background()
	driverID := uuid.New()
	vehicle := testVehicle(driverID)

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	locationRepo.EXPECT().CreateLocation(ctx, mock.Anything).Return(nil)
	broadcaster.EXPECT().Broadcast(ctx, mock.Anything).Return(errors.New("relay down"))

	location, err := service.ReportLocation(ctx, driverID, &usecase.ReportLocationInput{
		VehicleID: vehicle.ID,
		Latitude:  4.7,
		Longitude: -74.1,
	})

	require.NoError(t, err)
	assert.NotNil(t, location)
}

func TestTrackingService_GetCurrentLocation_NotFound(t *testing.T) {
	service, _, locationRepo, _, _ := createTestTrackingService(t)

	ctx := context.Background()
	vehicleID := uuid.New()

	locationRepo.EXPECT().FindCurrentLocation(ctx, vehicleID).Return(nil, repository.ErrLocationNotFound)

	location, err := service.GetCurrentLocation(ctx, vehicleID)

	assert.Nil(t, location)
	assert.ErrorIs(t, err, domainerrors.ErrNoCurrentLocation)
}

func TestTrackingService_GetRecentLocations_ClampsLimit(t *testing.T) {
	service, _, locationRepo, _, _ := createTestTrackingService(t)

	ctx := context.Background()
	vehicleID := uuid.New()

	locationRepo.EXPECT().FindRecentLocations(ctx, vehicleID, 50).Return([]*entity.VehicleLocation{}, nil)

	_, err := service.GetRecentLocations(ctx, vehicleID, 500)

	require.NoError(t, err)
}

func TestTrackingService_GenerateTrackingQR_Success(t *testing.T) {
	service, vehicleRepo, _, _, qrcodeSvc := createTestTrackingService(t)

	ctx := context.Background()
	vehicle := testVehicle(uuid.New())
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	qrcodeSvc.EXPECT().GenerateTrackingQR(vehicle.ID).Return(png, nil)

	got, err := service.GenerateTrackingQR(ctx, vehicle.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestTrackingService_GenerateTrackingQR_VehicleNotFound(t *testing.T) {
	service, vehicleRepo, _, _, _ := createTestTrackingService(t)

	ctx := context.Background()
	vehicleID := uuid.New()

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicleID).Return(nil, repository.ErrVehicleNotFound)

	got, err := service.GenerateTrackingQR(ctx, vehicleID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrVehicleNotFound)
}
