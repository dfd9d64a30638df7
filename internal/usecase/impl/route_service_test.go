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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRouteService(t *testing.T) (
	usecase.RouteUsecase,
	*mockRepo.MockRouteRepository,
	*mockRepo.MockDogRepository,
	*mockRepo.MockVehicleRepository,
	*mockRepo.MockTransactionManager,
	*mockSvc.MockEventPublisher,
) {
	routeRepo := mockRepo.NewMockRouteRepository(t)
	dogRepo := mockRepo.NewMockDogRepository(t)
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Tracking: &config.TrackingConfig{AutoCompleteRoutes: true},
	}

	svc := NewRouteService(logger, cfg, routeRepo, dogRepo, vehicleRepo, txManager, publisher)

	return svc, routeRepo, dogRepo, vehicleRepo, txManager, publisher
}

// expectTransaction runs the transactional closure against the same route
// repository mock used outside the transaction.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, routeRepo *mockRepo.MockRouteRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRouteRepository().Return(routeRepo)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func testTransportDog(name string, pickupOrder int) *entity.Dog {
	return &entity.Dog{
		ID:              uuid.New(),
		Name:            name,
		GuardianID:      uuid.New(),
		TransportActive: true,
		PickupOrder:     pickupOrder,
		Active:          true,
	}
}

func testActiveRoute(vehicleID uuid.UUID, dogIDs ...uuid.UUID) *entity.TransportRoute {
	route := &entity.TransportRoute{
		ID:        uuid.New(),
		VehicleID: vehicleID,
		Date:      time.Now(),
		RouteType: entity.RouteTypePickup,
		Status:    entity.RouteStatusActive,
	}
	for i, dogID := range dogIDs {
		route.Stops = append(route.Stops, entity.RouteStop{
			ID:        uuid.New(),
			RouteID:   route.ID,
			DogID:     dogID,
			StopOrder: i + 1,
			Status:    entity.StopStatusPending,
		})
	}

	return route
}

func TestRouteService_PlanRoute_PickupFollowsPickupOrder(t *testing.T) {
	svc, routeRepo, dogRepo, vehicleRepo, _, _ := createTestRouteService(t)

	ctx := context.Background()
	vehicle := testVehicle(uuid.New())
	first := testTransportDog("Rocky", 1)
	second := testTransportDog("Luna", 2)

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	dogRepo.EXPECT().FindTransportDogs(ctx).Return([]*entity.Dog{first, second}, nil)
	dogRepo.EXPECT().FindPrimaryAddress(ctx, first.ID).Return(&entity.DogAddress{
		DogID: first.ID, FullAddress: "Calle 1", Latitude: 4.1, Longitude: -74.1, IsPrimary: true,
	}, nil)
	dogRepo.EXPECT().FindPrimaryAddress(ctx, second.ID).Return(&entity.DogAddress{
		DogID: second.ID, FullAddress: "Calle 2", Latitude: 4.2, Longitude: -74.2, IsPrimary: true,
	}, nil)
	routeRepo.EXPECT().CreateRoute(ctx, mock.Anything).Return(nil)

	route, err := svc.PlanRoute(ctx, &usecase.PlanRouteInput{
		VehicleID: vehicle.ID,
		Date:      time.Now(),
		RouteType: entity.RouteTypePickup,
	})

	require.NoError(t, err)
	require.Len(t, route.Stops, 2)
	assert.Equal(t, first.ID, route.Stops[0].DogID)
	assert.Equal(t, 1, route.Stops[0].StopOrder)
	assert.Equal(t, second.ID, route.Stops[1].DogID)
	assert.Equal(t, 2, route.Stops[1].StopOrder)
	assert.Equal(t, entity.RouteStatusPlanned, route.Status)
}

func TestRouteService_PlanRoute_DropoffReversesStops(t *testing.T) {
	svc, routeRepo, dogRepo, vehicleRepo, _, _ := createTestRouteService(t)

	ctx := context.Background()
	vehicle := testVehicle(uuid.New())
	first := testTransportDog("Rocky", 1)
	second := testTransportDog("Luna", 2)

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	dogRepo.EXPECT().FindTransportDogs(ctx).Return([]*entity.Dog{first, second}, nil)
	dogRepo.EXPECT().FindPrimaryAddress(ctx, mock.Anything).Return(&entity.DogAddress{
		FullAddress: "Calle", IsPrimary: true,
	}, nil).Times(2)
	routeRepo.EXPECT().CreateRoute(ctx, mock.Anything).Return(nil)

	route, err := svc.PlanRoute(ctx, &usecase.PlanRouteInput{
		VehicleID: vehicle.ID,
		Date:      time.Now(),
		RouteType: entity.RouteTypeDropoff,
	})

	require.NoError(t, err)
	require.Len(t, route.Stops, 2)
	assert.Equal(t, second.ID, route.Stops[0].DogID)
	assert.Equal(t, first.ID, route.Stops[1].DogID)
	assert.Equal(t, 1, route.Stops[0].StopOrder)
}

func TestRouteService_PlanRoute_SkipsDogWithoutAddress(t *testing.T) {
	svc, routeRepo, dogRepo, vehicleRepo, _, _ := createTestRouteService(t)

	ctx := context.Background()
	vehicle := testVehicle(uuid.New())
	withAddress := testTransportDog("Rocky", 1)
	withoutAddress := testTransportDog("Luna", 2)

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	dogRepo.EXPECT().FindTransportDogs(ctx).Return([]*entity.Dog{withAddress, withoutAddress}, nil)
	dogRepo.EXPECT().FindPrimaryAddress(ctx, withAddress.ID).Return(&entity.DogAddress{
		DogID: withAddress.ID, FullAddress: "Calle 1", IsPrimary: true,
	}, nil)
	dogRepo.EXPECT().FindPrimaryAddress(ctx, withoutAddress.ID).Return(nil, repository.ErrDogAddressNotFound)
	routeRepo.EXPECT().CreateRoute(ctx, mock.Anything).Return(nil)

	route, err := svc.PlanRoute(ctx, &usecase.PlanRouteInput{
		VehicleID: vehicle.ID,
		Date:      time.Now(),
		RouteType: entity.RouteTypePickup,
	})

	require.NoError(t, err)
	require.Len(t, route.Stops, 1)
	assert.Equal(t, withAddress.ID, route.Stops[0].DogID)
}

func TestRouteService_PlanRoute_Duplicate(t *testing.T) {
	svc, routeRepo, dogRepo, vehicleRepo, _, _ := createTestRouteService(t)

	ctx := context.Background()
	vehicle := testVehicle(uuid.New())

	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	dogRepo.EXPECT().FindTransportDogs(ctx).Return([]*entity.Dog{}, nil)
	routeRepo.EXPECT().CreateRoute(ctx, mock.Anything).Return(repository.ErrDuplicateRoute)

	route, err := svc.PlanRoute(ctx, &usecase.PlanRouteInput{
		VehicleID: vehicle.ID,
		Date:      time.Now(),
		RouteType: entity.RouteTypePickup,
	})

	assert.Nil(t, route)
	assert.ErrorIs(t, err, domainerrors.ErrRouteAlreadyExists)
}

func TestRouteService_StartRoute_Success(t *testing.T) {
	svc, routeRepo, dogRepo, vehicleRepo, _, publisher := createTestRouteService(t)

	ctx := context.Background()
	driverID := uuid.New()
	vehicle := testVehicle(driverID)
	dog := testTransportDog("Rocky", 1)
	route := testActiveRoute(vehicle.ID, dog.ID)
	route.Status = entity.RouteStatusPlanned

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	routeRepo.EXPECT().UpdateRouteStatus(ctx, route.ID, entity.RouteStatusActive).Return(nil)
	routeRepo.EXPECT().AppendRouteEvent(ctx, mock.Anything).Return(nil)
	dogRepo.EXPECT().FindDogByID(ctx, dog.ID).Return(dog, nil)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	started, err := svc.StartRoute(ctx, driverID, route.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RouteStatusActive, started.Status)
}

func TestRouteService_StartRoute_AlreadyActiveIsNoop(t *testing.T) {
	svc, routeRepo, _, vehicleRepo, _, _ := createTestRouteService(t)

	ctx := context.Background()
	driverID := uuid.New()
	vehicle := testVehicle(driverID)
	route := testActiveRoute(vehicle.ID, uuid.New())

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)

	started, err := svc.StartRoute(ctx, driverID, route.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RouteStatusActive, started.Status)
}

func TestRouteService_StartRoute_Forbidden(t *testing.T) {
	svc, routeRepo, _, vehicleRepo, _, _ := createTestRouteService(t)

	ctx := context.Background()
	vehicle := testVehicle(uuid.New())
	route := testActiveRoute(vehicle.ID, uuid.New())

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)

	started, err := svc.StartRoute(ctx, uuid.New(), route.ID)

	assert.Nil(t, started)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRouteService_CompleteStop_Success(t *testing.T) {
	svc, routeRepo, dogRepo, vehicleRepo, txManager, publisher := createTestRouteService(t)

	ctx := context.Background()
	driverID := uuid.New()
	vehicle := testVehicle(driverID)
	dog := testTransportDog("Rocky", 1)
	otherDog := testTransportDog("Luna", 2)
	route := testActiveRoute(vehicle.ID, dog.ID, otherDog.ID)
	stop := route.Stops[0]

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	expectTransaction(t, txManager, routeRepo)
	routeRepo.EXPECT().CompleteStop(ctx, stop.ID, mock.Anything).Return(true, nil)
	routeRepo.EXPECT().AppendRouteEvent(ctx, mock.Anything).Return(nil)
	dogRepo.EXPECT().FindDogByID(ctx, dog.ID).Return(dog, nil)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)
	routeRepo.EXPECT().CountPendingStops(ctx, route.ID).Return(int64(1), nil)

	result, err := svc.CompleteStop(ctx, driverID, &usecase.CompleteStopInput{
		RouteID: route.ID,
		StopID:  stop.ID,
	})

	require.NoError(t, err)
	assert.False(t, result.AlreadyDone)
	assert.False(t, result.RouteCompleted)
	assert.Equal(t, entity.StopStatusCompleted, result.Stop.Status)
	assert.NotNil(t, result.Stop.ActualTime)
}

func TestRouteService_CompleteStop_LastStopCompletesRoute(t *testing.T) {
	svc, routeRepo, dogRepo, vehicleRepo, txManager, publisher := createTestRouteService(t)

	ctx := context.Background()
	driverID := uuid.New()
	vehicle := testVehicle(driverID)
	dog := testTransportDog("Rocky", 1)
	route := testActiveRoute(vehicle.ID, dog.ID)
	stop := route.Stops[0]

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	expectTransaction(t, txManager, routeRepo)
	routeRepo.EXPECT().CompleteStop(ctx, stop.ID, mock.Anything).Return(true, nil)
	routeRepo.EXPECT().AppendRouteEvent(ctx, mock.Anything).Return(nil).Times(2)
	routeRepo.EXPECT().CountPendingStops(ctx, route.ID).Return(int64(0), nil)
	routeRepo.EXPECT().UpdateRouteStatus(ctx, route.ID, entity.RouteStatusCompleted).Return(nil)
	dogRepo.EXPECT().FindDogByID(ctx, dog.ID).Return(dog, nil).Times(2)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil).Times(2)

	result, err := svc.CompleteStop(ctx, driverID, &usecase.CompleteStopInput{
		RouteID: route.ID,
		StopID:  stop.ID,
	})

	require.NoError(t, err)
	assert.True(t, result.RouteCompleted)
}

func TestRouteService_CompleteStop_AlreadyDone(t *testing.T) {
	svc, routeRepo, _, vehicleRepo, txManager, _ := createTestRouteService(t)

	ctx := context.Background()
	driverID := uuid.New()
	vehicle := testVehicle(driverID)
	route := testActiveRoute(vehicle.ID, uuid.New())
	stop := route.Stops[0]
	completedAt := time.Now().Add(-time.Minute)
	completedStop := &entity.RouteStop{
		ID:         stop.ID,
		RouteID:    route.ID,
		DogID:      stop.DogID,
		Status:     entity.StopStatusCompleted,
		ActualTime: &completedAt,
	}

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	expectTransaction(t, txManager, routeRepo)
	routeRepo.EXPECT().CompleteStop(ctx, stop.ID, mock.Anything).Return(false, nil)
	routeRepo.EXPECT().FindStopByID(ctx, stop.ID).Return(completedStop, nil)

	result, err := svc.CompleteStop(ctx, driverID, &usecase.CompleteStopInput{
		RouteID: route.ID,
		StopID:  stop.ID,
	})

	require.NoError(t, err)
	assert.True(t, result.AlreadyDone)
	assert.False(t, result.RouteCompleted)
	assert.Equal(t, completedStop, result.Stop)
}

func TestRouteService_CompleteStop_RouteNotActive(t *testing.T) {
	svc, routeRepo, _, vehicleRepo, _, _ := createTestRouteService(t)

	ctx := context.Background()
	driverID := uuid.New()
	vehicle := testVehicle(driverID)
	route := testActiveRoute(vehicle.ID, uuid.New())
	route.Status = entity.RouteStatusPlanned

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)

	result, err := svc.CompleteStop(ctx, driverID, &usecase.CompleteStopInput{
		RouteID: route.ID,
		StopID:  route.Stops[0].ID,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrRouteNotActive)
}

func TestRouteService_CompleteStop_StopNotInRoute(t *testing.T) {
	svc, routeRepo, _, vehicleRepo, _, _ := createTestRouteService(t)

	ctx := context.Background()
	driverID := uuid.New()
	vehicle := testVehicle(driverID)
	route := testActiveRoute(vehicle.ID, uuid.New())

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)

	result, err := svc.CompleteStop(ctx, driverID, &usecase.CompleteStopInput{
		RouteID: route.ID,
		StopID:  uuid.New(),
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrStopNotFound)
}

func TestRouteService_CompleteRoute_ClosesWithPendingStops(t *testing.T) {
	svc, routeRepo, dogRepo, vehicleRepo, _, publisher := createTestRouteService(t)

	ctx := context.Background()
	driverID := uuid.New()
	vehicle := testVehicle(driverID)
	dog := testTransportDog("Rocky", 1)
	route := testActiveRoute(vehicle.ID, dog.ID)

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)
	routeRepo.EXPECT().UpdateRouteStatus(ctx, route.ID, entity.RouteStatusCompleted).Return(nil)
	routeRepo.EXPECT().AppendRouteEvent(ctx, mock.Anything).Return(nil)
	dogRepo.EXPECT().FindDogByID(ctx, dog.ID).Return(dog, nil)
	publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	completed, err := svc.CompleteRoute(ctx, driverID, route.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RouteStatusCompleted, completed.Status)
}

func TestRouteService_CompleteRoute_AlreadyCompletedIsNoop(t *testing.T) {
	svc, routeRepo, _, vehicleRepo, _, _ := createTestRouteService(t)

	ctx := context.Background()
	driverID := uuid.New()
	vehicle := testVehicle(driverID)
	route := testActiveRoute(vehicle.ID, uuid.New())
	route.Status = entity.RouteStatusCompleted

	routeRepo.EXPECT().FindRouteByID(ctx, route.ID).Return(route, nil)
	vehicleRepo.EXPECT().FindVehicleByID(ctx, vehicle.ID).Return(vehicle, nil)

	completed, err := svc.CompleteRoute(ctx, driverID, route.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.RouteStatusCompleted, completed.Status)
}

func TestRouteService_GetDogStops_FiltersToGuardianDogs(t *testing.T) {
	svc, routeRepo, dogRepo, _, _, _ := createTestRouteService(t)

	ctx := context.Background()
	guardianID := uuid.New()
	ownDog := testTransportDog("Rocky", 1)
	ownDog.GuardianID = guardianID
	strangerDogID := uuid.New()
	date := time.Now()

	route := testActiveRoute(uuid.New(), ownDog.ID, strangerDogID)
	emptyRoute := testActiveRoute(uuid.New(), strangerDogID)

	dogRepo.EXPECT().FindDogsByGuardian(ctx, guardianID).Return([]*entity.Dog{ownDog}, nil)
	routeRepo.EXPECT().FindRoutesByDate(ctx, date).Return([]*entity.TransportRoute{route, emptyRoute}, nil)

	routes, err := svc.GetDogStops(ctx, guardianID, date)

	require.NoError(t, err)
	require.Len(t, routes, 1)
	require.Len(t, routes[0].Stops, 1)
	assert.Equal(t, ownDog.ID, routes[0].Stops[0].DogID)
}
