package impl

import (
	"context"
	"log/slog"
	"time"

	"canino/config"
	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	"canino/internal/domain/service"
	"canino/internal/usecase"
	"canino/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultMovingThresholdKmh = 1.0
	defaultRecentLimit        = 50
)

type trackingService struct {
	logger       *slog.Logger
	vehicleRepo  repository.VehicleRepository
	locationRepo repository.LocationRepository
	broadcaster  service.LocationBroadcaster
	qrcodeSvc    service.QRCodeService

	movingThresholdKmh float64
	recentLimit        int
}

// NewTrackingService creates a new tracking service instance
func NewTrackingService(
	logger *slog.Logger,
	cfg *config.Config,
	vehicleRepo repository.VehicleRepository,
	locationRepo repository.LocationRepository,
	broadcaster service.LocationBroadcaster,
	qrcodeSvc service.QRCodeService,
) usecase.TrackingUsecase {
	movingThreshold := defaultMovingThresholdKmh
	recentLimit := defaultRecentLimit
	if cfg.Tracking != nil {
		if cfg.Tracking.MovingThresholdKmh > 0 {
			movingThreshold = cfg.Tracking.MovingThresholdKmh
		}
		if cfg.Tracking.RecentLimit > 0 {
			recentLimit = cfg.Tracking.RecentLimit
		}
	}

	return &trackingService{
		logger:             logger,
		vehicleRepo:        vehicleRepo,
		locationRepo:       locationRepo,
		broadcaster:        broadcaster,
		qrcodeSvc:          qrcodeSvc,
		movingThresholdKmh: movingThreshold,
		recentLimit:        recentLimit,
	}
}

// ReportLocation normalizes and persists one sample, then relays it to live
// subscribers. Relay failures are logged and swallowed: the persisted row is
// the source of truth and streaming clients reconcile on reconnect.
func (s *trackingService) ReportLocation(ctx context.Context, driverID uuid.UUID, input *usecase.ReportLocationInput) (*entity.VehicleLocation, error) {
	if !util.ValidCoordinates(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to load vehicle")
	}

	// Only the assigned driver may report for a vehicle.
	if vehicle.DriverID == nil || *vehicle.DriverID != driverID {
		return nil, domainerrors.ErrForbidden
	}

	speedKmh := util.SpeedToKmh(input.SpeedMs)

	source := entity.LocationSource(input.Source)
	if source == "" {
		source = entity.LocationSourceManual
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	location := &entity.VehicleLocation{
		VehicleID:  input.VehicleID,
		Latitude:   util.RoundCoordinate(input.Latitude),
		Longitude:  util.RoundCoordinate(input.Longitude),
		HeadingDeg: input.HeadingDeg,
		SpeedKmh:   speedKmh,
		AccuracyM:  input.AccuracyM,
		IsMoving:   speedKmh > s.movingThresholdKmh,
		Source:     source,
		RecordedAt: recordedAt,
	}

	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, err
	}

	if err := s.broadcaster.Broadcast(ctx, location); err != nil {
		s.logger.Warn("Failed to relay location sample",
			slog.String("vehicle_id", location.VehicleID.String()),
			slog.String("error", err.Error()),
		)
	}

	return location, nil
}

// GetCurrentLocation returns the vehicle's most recent sample by RecordedAt.
func (s *trackingService) GetCurrentLocation(ctx context.Context, vehicleID uuid.UUID) (*entity.VehicleLocation, error) {
	location, err := s.locationRepo.FindCurrentLocation(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrNoCurrentLocation
		}

		return nil, err
	}

	return location, nil
}

// GetRecentLocations returns the newest samples, newest first.
func (s *trackingService) GetRecentLocations(ctx context.Context, vehicleID uuid.UUID, limit int) ([]*entity.VehicleLocation, error) {
	if limit <= 0 || limit > s.recentLimit {
		limit = s.recentLimit
	}

	return s.locationRepo.FindRecentLocations(ctx, vehicleID, limit)
}

// StreamLocations subscribes to the vehicle's live samples.
func (s *trackingService) StreamLocations(ctx context.Context, vehicleID uuid.UUID) (<-chan *entity.VehicleLocation, func(), error) {
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, nil, domainerrors.ErrVehicleNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to load vehicle")
	}

	return s.broadcaster.Subscribe(ctx, vehicleID)
}

// ListActiveVehicles returns the vehicles currently in service.
func (s *trackingService) ListActiveVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	return s.vehicleRepo.FindActiveVehicles(ctx)
}

// GenerateTrackingQR renders the QR code for a vehicle's public tracking page.
func (s *trackingService) GenerateTrackingQR(ctx context.Context, vehicleID uuid.UUID) ([]byte, error) {
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to load vehicle")
	}

	return s.qrcodeSvc.GenerateTrackingQR(vehicleID)
}
