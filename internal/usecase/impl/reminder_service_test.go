package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"canino/config"
	"canino/internal/domain/constants"
	"canino/internal/domain/entity"
	"canino/internal/domain/repository"
	mockRepo "canino/internal/mocks/repository"
	mockUsecase "canino/internal/mocks/usecase"
	"canino/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "canino/internal/domain/errors"
)

type reminderServiceMocks struct {
	medicalRepo      *mockRepo.MockMedicalRepository
	notificationRepo *mockRepo.MockNotificationRepository
	cronLogRepo      *mockRepo.MockCronLogRepository
	dogRepo          *mockRepo.MockDogRepository
	vehicleRepo      *mockRepo.MockVehicleRepository
	routeRepo        *mockRepo.MockRouteRepository
	locationRepo     *mockRepo.MockLocationRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	txManager        *mockRepo.MockTransactionManager
	routeUsecase     *mockUsecase.MockRouteUsecase
}

func createTestReminderService(t *testing.T) (usecase.ReminderUsecase, *reminderServiceMocks) {
	cfg := &config.Config{
		Reminders: &config.RemindersConfig{VaccineLookaheadDays: 7, SubscriptionTTLDays: 90},
		Tracking:  &config.TrackingConfig{RetentionDays: 30},
	}

	return createTestReminderServiceWithConfig(t, cfg)
}

func createTestReminderServiceWithConfig(t *testing.T, cfg *config.Config) (usecase.ReminderUsecase, *reminderServiceMocks) {
	mocks := &reminderServiceMocks{
		medicalRepo:      mockRepo.NewMockMedicalRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		cronLogRepo:      mockRepo.NewMockCronLogRepository(t),
		dogRepo:          mockRepo.NewMockDogRepository(t),
		vehicleRepo:      mockRepo.NewMockVehicleRepository(t),
		routeRepo:        mockRepo.NewMockRouteRepository(t),
		locationRepo:     mockRepo.NewMockLocationRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
		routeUsecase:     mockUsecase.NewMockRouteUsecase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewReminderService(logger, cfg,
		mocks.medicalRepo, mocks.notificationRepo, mocks.cronLogRepo,
		mocks.dogRepo, mocks.vehicleRepo, mocks.routeRepo,
		mocks.locationRepo, mocks.subscriptionRepo, mocks.txManager,
		mocks.routeUsecase,
	)

	return svc, mocks
}

func TestReminderService_CheckMedicalReminders_VaccineCreatesNotification(t *testing.T) {
	svc, mocks := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	dog := testTransportDog("Rocky", 1)
	vaccine := &entity.DogVaccine{
		ID:          uuid.New(),
		DogID:       dog.ID,
		Name:        "Rabia",
		NextDueDate: now.AddDate(0, 0, 3),
	}

	mocks.medicalRepo.EXPECT().FindDueVaccines(ctx, now, now.AddDate(0, 0, 7)).Return([]*entity.DogVaccine{vaccine}, nil)
	mocks.dogRepo.EXPECT().FindDogByID(ctx, dog.ID).Return(dog, nil)
	mocks.notificationRepo.EXPECT().NotificationExists(ctx, dog.GuardianID, mock.Anything, TemplateVaccineDue, now).Return(false, nil)
	mocks.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Run(func(_ context.Context, n *entity.ScheduledNotification) {
		assert.Equal(t, dog.GuardianID, n.UserID)
		require.NotNil(t, n.DogID)
		assert.Equal(t, dog.ID, *n.DogID)
		assert.Equal(t, TemplateVaccineDue, n.TemplateKey)
		assert.Equal(t, "Rocky", n.Variables["dogName"])
		assert.Equal(t, "Rabia", n.Variables["vaccineName"])
		assert.Equal(t, vaccine.NextDueDate.Format("2006-01-02"), n.Variables["dueDate"])
		assert.Equal(t, entity.NotificationStatusPending, n.Status)
	}).Return(nil)
	mocks.medicalRepo.EXPECT().FindDueMedicines(ctx, now).Return(nil, nil)
	mocks.cronLogRepo.EXPECT().CreateCronLog(ctx, mock.Anything).Return(nil)

	result, err := svc.CheckMedicalReminders(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemsProcessed)
	assert.Equal(t, 1, result.NotificationsCreated)
	assert.Empty(t, result.Errors)
}

func TestReminderService_CheckMedicalReminders_SkipsExistingReminder(t *testing.T) {
	svc, mocks := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	dog := testTransportDog("Luna", 1)
	vaccine := &entity.DogVaccine{ID: uuid.New(), DogID: dog.ID, Name: "Sextuple", NextDueDate: now}

	mocks.medicalRepo.EXPECT().FindDueVaccines(ctx, now, now.AddDate(0, 0, 7)).Return([]*entity.DogVaccine{vaccine}, nil)
	mocks.dogRepo.EXPECT().FindDogByID(ctx, dog.ID).Return(dog, nil)
	mocks.notificationRepo.EXPECT().NotificationExists(ctx, dog.GuardianID, mock.Anything, TemplateVaccineDue, now).Return(true, nil)
	mocks.medicalRepo.EXPECT().FindDueMedicines(ctx, now).Return(nil, nil)
	mocks.cronLogRepo.EXPECT().CreateCronLog(ctx, mock.Anything).Return(nil)

	result, err := svc.CheckMedicalReminders(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemsProcessed)
	assert.Equal(t, 0, result.NotificationsCreated)
}

func TestReminderService_CheckMedicalReminders_MedicineAdvancesDose(t *testing.T) {
	cases := []struct {
		name        string
		frequency   entity.MedicineFrequency
		advanceDays int
	}{
		{"daily", entity.FrequencyDaily, 1},
		{"weekly", entity.FrequencyWeekly, 7},
		{"monthly", entity.FrequencyMonthly, 30},
		{"every two months", entity.FrequencyEvery2Months, 60},
		{"every three months", entity.FrequencyEvery3Months, 90},
		{"every six months", entity.FrequencyEvery6Months, 180},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mocks := createTestReminderService(t)

			ctx := context.Background()
			now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
			dog := testTransportDog("Rocky", 1)
			doseDate := now
			medicine := &entity.Medicine{
				ID:           uuid.New(),
				DogID:        dog.ID,
				Name:         "Apoquel",
				Dosage:       "media tableta",
				Frequency:    tc.frequency,
				NextDoseDate: &doseDate,
				IsOngoing:    true,
			}

			mocks.medicalRepo.EXPECT().FindDueVaccines(ctx, now, now.AddDate(0, 0, 7)).Return(nil, nil)
			mocks.medicalRepo.EXPECT().FindDueMedicines(ctx, now).Return([]*entity.Medicine{medicine}, nil)
			mocks.dogRepo.EXPECT().FindDogByID(ctx, dog.ID).Return(dog, nil)

			txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
			txMedicalRepo := mockRepo.NewMockMedicalRepository(t)
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewNotificationRepository().Return(txNotificationRepo)
			factory.EXPECT().NewMedicalRepository().Return(txMedicalRepo)
			mocks.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
				func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
					return fn(factory)
				})

			txNotificationRepo.EXPECT().NotificationExists(ctx, dog.GuardianID, mock.Anything, TemplateMedicineDue, now).Return(false, nil)
			txNotificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
			txMedicalRepo.EXPECT().UpdateMedicineNextDose(ctx, medicine.ID, doseDate.AddDate(0, 0, tc.advanceDays)).Return(nil)
			mocks.cronLogRepo.EXPECT().CreateCronLog(ctx, mock.Anything).Return(nil)

			result, err := svc.CheckMedicalReminders(ctx, now)

			require.NoError(t, err)
			assert.Equal(t, 1, result.NotificationsCreated)
		})
	}
}

func TestReminderService_CheckMedicalReminders_AsNeededMedicineNeverReminds(t *testing.T) {
	svc, mocks := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	dog := testTransportDog("Rocky", 1)
	medicine := &entity.Medicine{
		ID:        uuid.New(),
		DogID:     dog.ID,
		Name:      "Tramadol",
		Frequency: entity.FrequencyAsNeeded,
		IsOngoing: true,
	}

	mocks.medicalRepo.EXPECT().FindDueVaccines(ctx, now, now.AddDate(0, 0, 7)).Return(nil, nil)
	mocks.medicalRepo.EXPECT().FindDueMedicines(ctx, now).Return([]*entity.Medicine{medicine}, nil)
	mocks.dogRepo.EXPECT().FindDogByID(ctx, dog.ID).Return(dog, nil)
	mocks.cronLogRepo.EXPECT().CreateCronLog(ctx, mock.Anything).Return(nil)

	result, err := svc.CheckMedicalReminders(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 0, result.NotificationsCreated)
}

func TestReminderService_CheckMedicalReminders_FetchFailureFailsCron(t *testing.T) {
	svc, mocks := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	mocks.medicalRepo.EXPECT().FindDueVaccines(ctx, now, now.AddDate(0, 0, 7)).Return(nil, errors.New("db down"))
	mocks.cronLogRepo.EXPECT().CreateCronLog(ctx, mock.Anything).Run(func(_ context.Context, log *entity.CronLog) {
		assert.Equal(t, constants.CronStatusFailed, log.Status)
		assert.Equal(t, 1, log.ErrorCount)
	}).Return(nil)

	result, err := svc.CheckMedicalReminders(ctx, now)

	require.Error(t, err)
	assert.Len(t, result.Errors, 1)
}

func TestReminderService_CheckRoutineReminders_Success(t *testing.T) {
	svc, mocks := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 8, 15, 0, 0, time.UTC)
	dog := testTransportDog("Luna", 1)
	routine := &entity.Routine{ID: uuid.New(), DogID: dog.ID, Name: "Paseo", Hour: 8, Active: true}

	mocks.medicalRepo.EXPECT().FindRoutinesByHour(ctx, 8).Return([]*entity.Routine{routine}, nil)
	mocks.dogRepo.EXPECT().FindDogByID(ctx, dog.ID).Return(dog, nil)
	mocks.notificationRepo.EXPECT().NotificationExists(ctx, dog.GuardianID, mock.Anything, TemplateRoutineDue, now).Return(false, nil)
	mocks.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Run(func(_ context.Context, n *entity.ScheduledNotification) {
		assert.Equal(t, "08:00", n.Variables["hour"])
		assert.Equal(t, "Paseo", n.Variables["routineName"])
	}).Return(nil)
	mocks.cronLogRepo.EXPECT().CreateCronLog(ctx, mock.Anything).Return(nil)

	result, err := svc.CheckRoutineReminders(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.NotificationsCreated)
}

func TestReminderService_CheckRoutineReminders_DuplicateRaceIsSwallowed(t *testing.T) {
	svc, mocks := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	dog := testTransportDog("Luna", 1)
	routine := &entity.Routine{ID: uuid.New(), DogID: dog.ID, Name: "Comida", Hour: 8, Active: true}

	mocks.medicalRepo.EXPECT().FindRoutinesByHour(ctx, 8).Return([]*entity.Routine{routine}, nil)
	mocks.dogRepo.EXPECT().FindDogByID(ctx, dog.ID).Return(dog, nil)
	mocks.notificationRepo.EXPECT().NotificationExists(ctx, dog.GuardianID, mock.Anything, TemplateRoutineDue, now).Return(false, nil)
	mocks.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(repository.ErrDuplicateNotification)
	mocks.cronLogRepo.EXPECT().CreateCronLog(ctx, mock.Anything).Return(nil)

	result, err := svc.CheckRoutineReminders(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 0, result.NotificationsCreated)
	assert.Empty(t, result.Errors)
}

func TestReminderService_ManageTransportRoutes_PlansBothDirections(t *testing.T) {
	svc, mocks := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	vehicle := testVehicle(uuid.New())
	tomorrow := now.AddDate(0, 0, 1)

	mocks.vehicleRepo.EXPECT().FindActiveVehicles(ctx).Return([]*entity.Vehicle{vehicle}, nil)
	mocks.routeUsecase.EXPECT().PlanRoute(ctx, &usecase.PlanRouteInput{
		VehicleID: vehicle.ID, Date: tomorrow, RouteType: entity.RouteTypePickup,
	}).Return(&entity.TransportRoute{}, nil)
	mocks.routeUsecase.EXPECT().PlanRoute(ctx, &usecase.PlanRouteInput{
		VehicleID: vehicle.ID, Date: tomorrow, RouteType: entity.RouteTypeDropoff,
	}).Return(nil, domainerrors.ErrRouteAlreadyExists)
	mocks.cronLogRepo.EXPECT().CreateCronLog(ctx, mock.Anything).Return(nil)

	result, err := svc.ManageTransportRoutes(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 2, result.ItemsProcessed)
	assert.Equal(t, 1, result.NotificationsCreated)
	assert.Empty(t, result.Errors)
}

func TestReminderService_RunDailyMaintenance_Success(t *testing.T) {
	svc, mocks := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	dog := testTransportDog("Rocky", 1)
	staleRoute := testActiveRoute(uuid.New(), dog.ID)
	evaluation := &entity.Evaluation{ID: uuid.New(), DogID: dog.ID, Date: today, Published: true}

	mocks.locationRepo.EXPECT().DeleteLocationsBefore(ctx, now.AddDate(0, 0, -30)).Return(int64(120), nil)
	mocks.routeRepo.EXPECT().FindStaleActiveRoutes(ctx, today).Return([]*entity.TransportRoute{staleRoute}, nil)
	mocks.routeRepo.EXPECT().UpdateRouteStatus(ctx, staleRoute.ID, entity.RouteStatusCompleted).Return(nil)
	mocks.routeRepo.EXPECT().AppendRouteEvent(ctx, mock.Anything).Return(nil)
	mocks.subscriptionRepo.EXPECT().DeactivateSubscriptionsUnusedSince(ctx, now.AddDate(0, 0, -90)).Return(int64(2), nil)
	mocks.dogRepo.EXPECT().FindEvaluationsPublishedOn(ctx, today).Return([]*entity.Evaluation{evaluation}, nil)
	mocks.dogRepo.EXPECT().FindDogByID(ctx, dog.ID).Return(dog, nil)
	mocks.notificationRepo.EXPECT().NotificationExists(ctx, dog.GuardianID, mock.Anything, TemplateEvaluationReady, now).Return(false, nil)
	mocks.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	mocks.cronLogRepo.EXPECT().CreateCronLog(ctx, mock.Anything).Return(nil)

	result, err := svc.RunDailyMaintenance(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, int64(120), result.LocationsPruned)
	assert.Equal(t, 1, result.RoutesClosed)
	assert.Equal(t, int64(2), result.SubscriptionsDeactivated)
	assert.Equal(t, 1, result.EvaluationNotices)
	assert.Empty(t, result.Errors)
}

func TestReminderService_RunDailyMaintenance_StaleRouteAgeMovesCutoff(t *testing.T) {
	cfg := &config.Config{
		Reminders: &config.RemindersConfig{VaccineLookaheadDays: 7, SubscriptionTTLDays: 90},
		Tracking:  &config.TrackingConfig{RetentionDays: 30, StaleRouteAge: 36 * time.Hour},
	}
	svc, mocks := createTestReminderServiceWithConfig(t, cfg)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	mocks.locationRepo.EXPECT().DeleteLocationsBefore(ctx, mock.Anything).Return(int64(0), nil)
	mocks.routeRepo.EXPECT().FindStaleActiveRoutes(ctx, now.Add(-36*time.Hour)).Return(nil, nil)
	mocks.subscriptionRepo.EXPECT().DeactivateSubscriptionsUnusedSince(ctx, mock.Anything).Return(int64(0), nil)
	mocks.dogRepo.EXPECT().FindEvaluationsPublishedOn(ctx, today).Return(nil, nil)
	mocks.cronLogRepo.EXPECT().CreateCronLog(ctx, mock.Anything).Return(nil)

	result, err := svc.RunDailyMaintenance(ctx, now)

	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}

func TestReminderService_RunDailyMaintenance_PartialFailuresAccumulate(t *testing.T) {
	svc, mocks := createTestReminderService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	mocks.locationRepo.EXPECT().DeleteLocationsBefore(ctx, mock.Anything).Return(int64(0), errors.New("prune failed"))
	mocks.routeRepo.EXPECT().FindStaleActiveRoutes(ctx, today).Return(nil, nil)
	mocks.subscriptionRepo.EXPECT().DeactivateSubscriptionsUnusedSince(ctx, mock.Anything).Return(int64(0), nil)
	mocks.dogRepo.EXPECT().FindEvaluationsPublishedOn(ctx, today).Return(nil, nil)
	mocks.cronLogRepo.EXPECT().CreateCronLog(ctx, mock.Anything).Return(nil)

	result, err := svc.RunDailyMaintenance(ctx, now)

	require.NoError(t, err)
	assert.Len(t, result.Errors, 1)
}
