package impl

import (
	"context"
	"log/slog"
	"time"

	"canino/config"
	deliverycontext "canino/internal/delivery/context"
	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	"canino/internal/domain/service"
	"canino/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type routeService struct {
	logger      *slog.Logger
	routeRepo   repository.RouteRepository
	dogRepo     repository.DogRepository
	vehicleRepo repository.VehicleRepository
	txManager   repository.TransactionManager
	publisher   service.EventPublisher

	autoCompleteRoutes bool
}

// NewRouteService creates a new route service instance
func NewRouteService(
	logger *slog.Logger,
	cfg *config.Config,
	routeRepo repository.RouteRepository,
	dogRepo repository.DogRepository,
	vehicleRepo repository.VehicleRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
) usecase.RouteUsecase {
	autoComplete := true
	if cfg.Tracking != nil {
		autoComplete = cfg.Tracking.AutoCompleteRoutes
	}

	return &routeService{
		logger:             logger,
		routeRepo:          routeRepo,
		dogRepo:            dogRepo,
		vehicleRepo:        vehicleRepo,
		txManager:          txManager,
		publisher:          publisher,
		autoCompleteRoutes: autoComplete,
	}
}

// PlanRoute generates a route from the enrolled transport dogs and their
// primary addresses. Pickup runs follow the configured pickup order;
// dropoff runs visit the same stops in reverse.
func (s *routeService) PlanRoute(ctx context.Context, input *usecase.PlanRouteInput) (*entity.TransportRoute, error) {
	if _, err := s.vehicleRepo.FindVehicleByID(ctx, input.VehicleID); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to load vehicle")
	}

	dogs, err := s.dogRepo.FindTransportDogs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load transport dogs")
	}

	stops := make([]entity.RouteStop, 0, len(dogs))
	for _, dog := range dogs {
		address, err := s.dogRepo.FindPrimaryAddress(ctx, dog.ID)
		if err != nil {
			if errors.Is(err, repository.ErrDogAddressNotFound) {
				// A dog without a registered address cannot be routed.
				s.logger.Warn("Skipping transport dog without primary address",
					slog.String("dog_id", dog.ID.String()),
					slog.String("dog_name", dog.Name),
				)

				continue
			}

			return nil, errors.Wrap(err, "failed to load dog address")
		}

		stops = append(stops, entity.RouteStop{
			DogID:     dog.ID,
			Address:   address.FullAddress,
			Latitude:  address.Latitude,
			Longitude: address.Longitude,
			Status:    entity.StopStatusPending,
		})
	}

	if input.RouteType == entity.RouteTypeDropoff {
		for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
			stops[i], stops[j] = stops[j], stops[i]
		}
	}

	for i := range stops {
		stops[i].StopOrder = i + 1
	}

	route := &entity.TransportRoute{
		VehicleID: input.VehicleID,
		Date:      input.Date,
		RouteType: input.RouteType,
		Status:    entity.RouteStatusPlanned,
		Stops:     stops,
	}

	if err := s.routeRepo.CreateRoute(ctx, route); err != nil {
		if errors.Is(err, repository.ErrDuplicateRoute) {
			return nil, domainerrors.ErrRouteAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create route")
	}

	return route, nil
}

// StartRoute transitions a planned route to active. Starting an already
// active route is a no-op so a reconnecting driver device can retry safely.
func (s *routeService) StartRoute(ctx context.Context, driverID, routeID uuid.UUID) (*entity.TransportRoute, error) {
	route, err := s.loadDriverRoute(ctx, driverID, routeID)
	if err != nil {
		return nil, err
	}

	switch route.Status {
	case entity.RouteStatusActive:
		return route, nil
	case entity.RouteStatusCompleted:
		return nil, domainerrors.ErrRouteNotActive
	}

	if err := s.routeRepo.UpdateRouteStatus(ctx, route.ID, entity.RouteStatusActive); err != nil {
		return nil, errors.Wrap(err, "failed to activate route")
	}
	route.Status = entity.RouteStatusActive

	event := &entity.RouteEvent{
		RouteID:   route.ID,
		EventType: service.EventRouteStarted,
		Detail:    "route started by driver",
	}
	if err := s.routeRepo.AppendRouteEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to append route event",
			slog.String("route_id", route.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.publishRouteEvent(ctx, service.EventRouteStarted, route, nil)

	return route, nil
}

// CompleteStop marks a pending stop completed exactly once. The conditional
// update in the repository makes double submissions report AlreadyDone
// instead of duplicating events or notifications.
func (s *routeService) CompleteStop(ctx context.Context, driverID uuid.UUID, input *usecase.CompleteStopInput) (*usecase.CompleteStopResult, error) {
	route, err := s.loadDriverRoute(ctx, driverID, input.RouteID)
	if err != nil {
		return nil, err
	}

	if route.Status != entity.RouteStatusActive {
		return nil, domainerrors.ErrRouteNotActive
	}

	var stop *entity.RouteStop
	for i := range route.Stops {
		if route.Stops[i].ID == input.StopID {
			stop = &route.Stops[i]

			break
		}
	}
	if stop == nil {
		return nil, domainerrors.ErrStopNotFound
	}

	completedAt := time.Now()

	var changed bool
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txRouteRepo := factory.NewRouteRepository()

		var err error
		changed, err = txRouteRepo.CompleteStop(ctx, stop.ID, completedAt)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}

		stopID := stop.ID

		return txRouteRepo.AppendRouteEvent(ctx, &entity.RouteEvent{
			RouteID:   route.ID,
			StopID:    &stopID,
			EventType: service.EventStopCompleted,
			Detail:    "stop completed by driver",
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete stop")
	}

	if !changed {
		current, err := s.routeRepo.FindStopByID(ctx, stop.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reload stop")
		}

		return &usecase.CompleteStopResult{Stop: current, AlreadyDone: true}, nil
	}

	stop.Status = entity.StopStatusCompleted
	stop.ActualTime = &completedAt

	s.publishRouteEvent(ctx, service.EventStopCompleted, route, stop)

	result := &usecase.CompleteStopResult{Stop: stop}

	pending, err := s.routeRepo.CountPendingStops(ctx, route.ID)
	if err != nil {
		s.logger.Warn("Failed to count pending stops",
			slog.String("route_id", route.ID.String()),
			slog.String("error", err.Error()),
		)

		return result, nil
	}

	if pending == 0 && s.autoCompleteRoutes {
		if err := s.routeRepo.UpdateRouteStatus(ctx, route.ID, entity.RouteStatusCompleted); err != nil {
			s.logger.Warn("Failed to auto-complete route",
				slog.String("route_id", route.ID.String()),
				slog.String("error", err.Error()),
			)

			return result, nil
		}

		if err := s.routeRepo.AppendRouteEvent(ctx, &entity.RouteEvent{
			RouteID:   route.ID,
			EventType: service.EventRouteCompleted,
			Detail:    "all stops completed",
		}); err != nil {
			s.logger.Warn("Failed to append route event",
				slog.String("route_id", route.ID.String()),
				slog.String("error", err.Error()),
			)
		}

		result.RouteCompleted = true
		s.publishRouteEvent(ctx, service.EventRouteCompleted, route, nil)
	}

	return result, nil
}

// CompleteRoute closes a route explicitly. A driver can end a run early
// even when stops remain pending, for example when a dog was absent.
func (s *routeService) CompleteRoute(ctx context.Context, driverID, routeID uuid.UUID) (*entity.TransportRoute, error) {
	route, err := s.loadDriverRoute(ctx, driverID, routeID)
	if err != nil {
		return nil, err
	}

	if route.Status == entity.RouteStatusCompleted {
		return route, nil
	}

	if err := s.routeRepo.UpdateRouteStatus(ctx, route.ID, entity.RouteStatusCompleted); err != nil {
		return nil, errors.Wrap(err, "failed to complete route")
	}
	route.Status = entity.RouteStatusCompleted

	if err := s.routeRepo.AppendRouteEvent(ctx, &entity.RouteEvent{
		RouteID:   route.ID,
		EventType: service.EventRouteCompleted,
		Detail:    "route completed by driver",
	}); err != nil {
		s.logger.Warn("Failed to append route event",
			slog.String("route_id", route.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.publishRouteEvent(ctx, service.EventRouteCompleted, route, nil)

	return route, nil
}

// GetRoute retrieves a route with its stops.
func (s *routeService) GetRoute(ctx context.Context, routeID uuid.UUID) (*entity.TransportRoute, error) {
	route, err := s.routeRepo.FindRouteByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to load route")
	}

	return route, nil
}

// GetRoutesForDate retrieves every route of a service date.
func (s *routeService) GetRoutesForDate(ctx context.Context, date time.Time) ([]*entity.TransportRoute, error) {
	return s.routeRepo.FindRoutesByDate(ctx, date)
}

// GetDriverRoutes retrieves the routes of the driver's vehicle for a date.
func (s *routeService) GetDriverRoutes(ctx context.Context, driverID uuid.UUID, date time.Time) ([]*entity.TransportRoute, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByDriver(ctx, driverID)
	if err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to load driver vehicle")
	}

	return s.routeRepo.FindRoutesByVehicleAndDate(ctx, vehicle.ID, date)
}

// GetDogStops returns the date's routes trimmed down to the stops that
// involve the guardian's dogs. Routes without a matching stop are omitted.
func (s *routeService) GetDogStops(ctx context.Context, guardianID uuid.UUID, date time.Time) ([]*entity.TransportRoute, error) {
	dogs, err := s.dogRepo.FindDogsByGuardian(ctx, guardianID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guardian dogs")
	}

	owned := make(map[uuid.UUID]struct{}, len(dogs))
	for _, dog := range dogs {
		owned[dog.ID] = struct{}{}
	}

	routes, err := s.routeRepo.FindRoutesByDate(ctx, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load routes")
	}

	filtered := make([]*entity.TransportRoute, 0, len(routes))
	for _, route := range routes {
		var stops []entity.RouteStop
		for _, stop := range route.Stops {
			if _, ok := owned[stop.DogID]; ok {
				stops = append(stops, stop)
			}
		}
		if len(stops) == 0 {
			continue
		}

		trimmed := *route
		trimmed.Stops = stops
		filtered = append(filtered, &trimmed)
	}

	return filtered, nil
}

// loadDriverRoute loads a route and checks the caller drives its vehicle.
func (s *routeService) loadDriverRoute(ctx context.Context, driverID, routeID uuid.UUID) (*entity.TransportRoute, error) {
	route, err := s.routeRepo.FindRouteByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to load route")
	}

	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, route.VehicleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load route vehicle")
	}

	if vehicle.DriverID == nil || *vehicle.DriverID != driverID {
		return nil, domainerrors.ErrForbidden
	}

	return route, nil
}

// publishRouteEvent pushes transport events to the notification worker.
// Stop events carry the stop's dog; route-level events fan out to every dog
// on the route so each guardian gets notified. Best-effort: a publish
// failure never fails the driver's request.
func (s *routeService) publishRouteEvent(ctx context.Context, eventType string, route *entity.TransportRoute, stop *entity.RouteStop) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	occurredAt := time.Now()

	stops := route.Stops
	if stop != nil {
		stops = []entity.RouteStop{*stop}
	}

	for i := range stops {
		current := &stops[i]

		event := &service.NotificationEvent{
			EventType:  eventType,
			RouteID:    route.ID.String(),
			RouteType:  string(route.RouteType),
			DogID:      current.DogID.String(),
			OccurredAt: occurredAt,
			RequestID:  requestID,
		}
		if stop != nil {
			event.StopID = current.ID.String()
		}

		dog, err := s.dogRepo.FindDogByID(ctx, current.DogID)
		if err != nil {
			s.logger.Warn("Failed to load dog for notification event",
				slog.String("dog_id", current.DogID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}
		event.DogName = dog.Name
		event.GuardianID = dog.GuardianID.String()

		if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
			s.logger.Warn("Failed to publish notification event",
				slog.String("event_type", eventType),
				slog.String("route_id", route.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}
