package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"canino/config"
	"canino/internal/domain/constants"
	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	"canino/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultVaccineLookaheadDays = 7
	defaultRetentionDays        = 30
	defaultSubscriptionTTLDays  = 90
	cronLogDetailLimit          = 5
)

type reminderService struct {
	logger           *slog.Logger
	medicalRepo      repository.MedicalRepository
	notificationRepo repository.NotificationRepository
	cronLogRepo      repository.CronLogRepository
	dogRepo          repository.DogRepository
	vehicleRepo      repository.VehicleRepository
	routeRepo        repository.RouteRepository
	locationRepo     repository.LocationRepository
	subscriptionRepo repository.SubscriptionRepository
	txManager        repository.TransactionManager
	routeUsecase     usecase.RouteUsecase

	vaccineLookaheadDays int
	retentionDays        int
	subscriptionTTLDays  int
	staleRouteAge        time.Duration
}

// NewReminderService creates a new reminder service instance
func NewReminderService(
	logger *slog.Logger,
	cfg *config.Config,
	medicalRepo repository.MedicalRepository,
	notificationRepo repository.NotificationRepository,
	cronLogRepo repository.CronLogRepository,
	dogRepo repository.DogRepository,
	vehicleRepo repository.VehicleRepository,
	routeRepo repository.RouteRepository,
	locationRepo repository.LocationRepository,
	subscriptionRepo repository.SubscriptionRepository,
	txManager repository.TransactionManager,
	routeUsecase usecase.RouteUsecase,
) usecase.ReminderUsecase {
	lookahead := defaultVaccineLookaheadDays
	retention := defaultRetentionDays
	subscriptionTTL := defaultSubscriptionTTLDays
	if cfg.Reminders != nil {
		if cfg.Reminders.VaccineLookaheadDays > 0 {
			lookahead = cfg.Reminders.VaccineLookaheadDays
		}
		if cfg.Reminders.SubscriptionTTLDays > 0 {
			subscriptionTTL = cfg.Reminders.SubscriptionTTLDays
		}
	}
	var staleRouteAge time.Duration
	if cfg.Tracking != nil {
		if cfg.Tracking.RetentionDays > 0 {
			retention = cfg.Tracking.RetentionDays
		}
		staleRouteAge = cfg.Tracking.StaleRouteAge
	}

	return &reminderService{
		logger:               logger,
		medicalRepo:          medicalRepo,
		notificationRepo:     notificationRepo,
		cronLogRepo:          cronLogRepo,
		dogRepo:              dogRepo,
		vehicleRepo:          vehicleRepo,
		routeRepo:            routeRepo,
		locationRepo:         locationRepo,
		subscriptionRepo:     subscriptionRepo,
		txManager:            txManager,
		routeUsecase:         routeUsecase,
		vaccineLookaheadDays: lookahead,
		retentionDays:        retention,
		subscriptionTTLDays:  subscriptionTTL,
		staleRouteAge:        staleRouteAge,
	}
}

// CheckMedicalReminders scans due vaccines and medicines and creates one
// guardian notification per due item per day. Medicine dose dates advance
// in the same transaction as the notification so a crash cannot skip or
// double a reminder.
func (s *reminderService) CheckMedicalReminders(ctx context.Context, now time.Time) (*usecase.CronResult, error) {
	startedAt := time.Now()
	result := &usecase.CronResult{JobName: constants.JobMedicalReminders}

	vaccines, err := s.medicalRepo.FindDueVaccines(ctx, now, now.AddDate(0, 0, s.vaccineLookaheadDays))
	if err != nil {
		return s.failCron(ctx, result, startedAt, errors.Wrap(err, "failed to list due vaccines"))
	}

	for _, vaccine := range vaccines {
		result.ItemsProcessed++

		dog, err := s.dogRepo.FindDogByID(ctx, vaccine.DogID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("vaccine %s: %v", vaccine.ID, err))

			continue
		}

		created, err := s.createReminder(ctx, s.notificationRepo, dog, TemplateVaccineDue, now, map[string]string{
			"dogName":     dog.Name,
			"vaccineName": vaccine.Name,
			"dueDate":     vaccine.NextDueDate.Format("2006-01-02"),
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("vaccine %s: %v", vaccine.ID, err))

			continue
		}
		if created {
			result.NotificationsCreated++
		}
	}

	medicines, err := s.medicalRepo.FindDueMedicines(ctx, now)
	if err != nil {
		return s.failCron(ctx, result, startedAt, errors.Wrap(err, "failed to list due medicines"))
	}

	for _, medicine := range medicines {
		result.ItemsProcessed++

		dog, err := s.dogRepo.FindDogByID(ctx, medicine.DogID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("medicine %s: %v", medicine.ID, err))

			continue
		}

		created, err := s.remindMedicine(ctx, dog, medicine, now)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("medicine %s: %v", medicine.ID, err))

			continue
		}
		if created {
			result.NotificationsCreated++
		}
	}

	s.writeCronLog(ctx, result, startedAt, constants.CronStatusCompleted)

	return result, nil
}

// remindMedicine creates the reminder and advances the dose date atomically.
func (s *reminderService) remindMedicine(ctx context.Context, dog *entity.Dog, medicine *entity.Medicine, now time.Time) (bool, error) {
	days, advances := medicine.Frequency.AdvanceInterval()
	if !advances || medicine.NextDoseDate == nil {
		return false, nil
	}
	next := medicine.NextDoseDate.AddDate(0, 0, days)

	var created bool
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		created, err = s.createReminder(ctx, factory.NewNotificationRepository(), dog, TemplateMedicineDue, now, map[string]string{
			"dogName":      dog.Name,
			"medicineName": medicine.Name,
			"dosage":       medicine.Dosage,
		})
		if err != nil {
			return err
		}
		if !created {
			return nil
		}

		return factory.NewMedicalRepository().UpdateMedicineNextDose(ctx, medicine.ID, next)
	})

	return created, err
}

// CheckRoutineReminders creates notifications for routines scheduled at the
// run's hour. At most one routine reminder per dog per day; additional
// routines on the same day fold into the first.
func (s *reminderService) CheckRoutineReminders(ctx context.Context, now time.Time) (*usecase.CronResult, error) {
	startedAt := time.Now()
	result := &usecase.CronResult{JobName: constants.JobRoutineReminders}

	routines, err := s.medicalRepo.FindRoutinesByHour(ctx, now.Hour())
	if err != nil {
		return s.failCron(ctx, result, startedAt, errors.Wrap(err, "failed to list routines"))
	}

	for _, routine := range routines {
		result.ItemsProcessed++

		dog, err := s.dogRepo.FindDogByID(ctx, routine.DogID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("routine %s: %v", routine.ID, err))

			continue
		}

		created, err := s.createReminder(ctx, s.notificationRepo, dog, TemplateRoutineDue, now, map[string]string{
			"dogName":     dog.Name,
			"routineName": routine.Name,
			"hour":        fmt.Sprintf("%02d:00", routine.Hour),
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("routine %s: %v", routine.ID, err))

			continue
		}
		if created {
			result.NotificationsCreated++
		}
	}

	s.writeCronLog(ctx, result, startedAt, constants.CronStatusCompleted)

	return result, nil
}

// ManageTransportRoutes plans tomorrow's pickup and dropoff runs for every
// active vehicle. Existing routes are left alone.
func (s *reminderService) ManageTransportRoutes(ctx context.Context, now time.Time) (*usecase.CronResult, error) {
	startedAt := time.Now()
	result := &usecase.CronResult{JobName: constants.JobManageRoutes}

	vehicles, err := s.vehicleRepo.FindActiveVehicles(ctx)
	if err != nil {
		return s.failCron(ctx, result, startedAt, errors.Wrap(err, "failed to list active vehicles"))
	}

	tomorrow := now.AddDate(0, 0, 1)
	for _, vehicle := range vehicles {
		for _, routeType := range []entity.RouteType{entity.RouteTypePickup, entity.RouteTypeDropoff} {
			result.ItemsProcessed++

			_, err := s.routeUsecase.PlanRoute(ctx, &usecase.PlanRouteInput{
				VehicleID: vehicle.ID,
				Date:      tomorrow,
				RouteType: routeType,
			})
			if err != nil {
				if errors.Is(err, domainerrors.ErrRouteAlreadyExists) {
					continue
				}
				result.Errors = append(result.Errors, fmt.Sprintf("vehicle %s %s: %v", vehicle.ID, routeType, err))

				continue
			}

			result.NotificationsCreated++ // counts routes created for this job
		}
	}

	s.writeCronLog(ctx, result, startedAt, constants.CronStatusCompleted)

	return result, nil
}

// RunDailyMaintenance prunes old locations, closes stale routes, expires
// unused push subscriptions and creates evaluation-ready notices.
func (s *reminderService) RunDailyMaintenance(ctx context.Context, now time.Time) (*usecase.MaintenanceResult, error) {
	startedAt := time.Now()
	result := &usecase.MaintenanceResult{}

	pruned, err := s.locationRepo.DeleteLocationsBefore(ctx, now.AddDate(0, 0, -s.retentionDays))
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("prune locations: %v", err))
	} else {
		result.LocationsPruned = pruned
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Default is anything started before today; a configured stale age widens
	// or narrows the window.
	staleBefore := today
	if s.staleRouteAge > 0 {
		staleBefore = now.Add(-s.staleRouteAge)
	}

	stale, err := s.routeRepo.FindStaleActiveRoutes(ctx, staleBefore)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("list stale routes: %v", err))
	}
	for _, route := range stale {
		if err := s.routeRepo.UpdateRouteStatus(ctx, route.ID, entity.RouteStatusCompleted); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("close route %s: %v", route.ID, err))

			continue
		}

		if err := s.routeRepo.AppendRouteEvent(ctx, &entity.RouteEvent{
			RouteID:   route.ID,
			EventType: "auto_closed",
			Detail:    "closed by daily maintenance",
		}); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("close route %s: %v", route.ID, err))
		}

		result.RoutesClosed++
	}

	deactivated, err := s.subscriptionRepo.DeactivateSubscriptionsUnusedSince(ctx, now.AddDate(0, 0, -s.subscriptionTTLDays))
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("expire subscriptions: %v", err))
	} else {
		result.SubscriptionsDeactivated = deactivated
	}

	evaluations, err := s.dogRepo.FindEvaluationsPublishedOn(ctx, today)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("list evaluations: %v", err))
	}
	for _, evaluation := range evaluations {
		dog, err := s.dogRepo.FindDogByID(ctx, evaluation.DogID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("evaluation %s: %v", evaluation.ID, err))

			continue
		}

		created, err := s.createReminder(ctx, s.notificationRepo, dog, TemplateEvaluationReady, now, map[string]string{
			"dogName": dog.Name,
			"date":    evaluation.Date.Format("2006-01-02"),
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("evaluation %s: %v", evaluation.ID, err))

			continue
		}
		if created {
			result.EvaluationNotices++
		}
	}

	s.writeCronLog(ctx, &usecase.CronResult{
		JobName:              constants.JobDailyMaintenance,
		ItemsProcessed:       int(result.LocationsPruned) + result.RoutesClosed + result.EvaluationNotices,
		NotificationsCreated: result.EvaluationNotices,
		Errors:               result.Errors,
	}, startedAt, constants.CronStatusCompleted)

	return result, nil
}

// createReminder creates a pending notification for the dog's guardian
// unless one already exists for the same template and day. Returns whether
// a new notification was created.
func (s *reminderService) createReminder(ctx context.Context, repo repository.NotificationRepository, dog *entity.Dog, templateKey string, now time.Time, variables map[string]string) (bool, error) {
	dogID := dog.ID

	exists, err := repo.NotificationExists(ctx, dog.GuardianID, &dogID, templateKey, now)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	notification := &entity.ScheduledNotification{
		UserID:       dog.GuardianID,
		DogID:        &dogID,
		TemplateKey:  templateKey,
		Variables:    variables,
		ScheduledFor: now,
		Status:       entity.NotificationStatusPending,
	}

	if err := repo.CreateNotification(ctx, notification); err != nil {
		// A concurrent run won the race; the reminder exists either way.
		if errors.Is(err, repository.ErrDuplicateNotification) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// failCron records a run that could not even enumerate its due items.
func (s *reminderService) failCron(ctx context.Context, result *usecase.CronResult, startedAt time.Time, err error) (*usecase.CronResult, error) {
	result.Errors = append(result.Errors, err.Error())
	s.writeCronLog(ctx, result, startedAt, constants.CronStatusFailed)

	return result, err
}

// writeCronLog persists the run summary. Logged and swallowed on failure.
func (s *reminderService) writeCronLog(ctx context.Context, result *usecase.CronResult, startedAt time.Time, status string) {
	details := ""
	if len(result.Errors) > 0 {
		sample := result.Errors
		if len(sample) > cronLogDetailLimit {
			sample = sample[:cronLogDetailLimit]
		}
		details = strings.Join(sample, "; ")
	}

	log := &entity.CronLog{
		JobName:              result.JobName,
		Status:               status,
		ItemsProcessed:       result.ItemsProcessed,
		NotificationsCreated: result.NotificationsCreated,
		ErrorCount:           len(result.Errors),
		Details:              details,
		StartedAt:            startedAt,
		FinishedAt:           time.Now(),
	}

	if err := s.cronLogRepo.CreateCronLog(ctx, log); err != nil {
		s.logger.Warn("Failed to persist cron log",
			slog.String("job_name", result.JobName),
			slog.String("error", err.Error()),
		)
	}
}
