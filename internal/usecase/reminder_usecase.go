package usecase

import (
	"context"
	"time"
)

// CronResult summarizes one cron job run. Per-item errors are accumulated,
// never fatal: one broken record must not starve the rest of the batch.
type CronResult struct {
	JobName              string   `json:"job_name"`
	ItemsProcessed       int      `json:"items_processed"`
	NotificationsCreated int      `json:"notifications_created"`
	Errors               []string `json:"errors,omitempty"`
}

// MaintenanceResult summarizes one daily maintenance run.
type MaintenanceResult struct {
	LocationsPruned          int64    `json:"locations_pruned"`
	RoutesClosed             int      `json:"routes_closed"`
	SubscriptionsDeactivated int64    `json:"subscriptions_deactivated"`
	EvaluationNotices        int      `json:"evaluation_notices"`
	Errors                   []string `json:"errors,omitempty"`
}

// ReminderUsecase defines the scheduled evaluation jobs run by the worker.
type ReminderUsecase interface {
	// CheckMedicalReminders scans due vaccines and medicines as of now and
	// creates guardian notifications, advancing medicine dose dates.
	CheckMedicalReminders(ctx context.Context, now time.Time) (*CronResult, error)

	// CheckRoutineReminders creates notifications for routines scheduled at
	// the given hour.
	CheckRoutineReminders(ctx context.Context, now time.Time) (*CronResult, error)

	// ManageTransportRoutes generates tomorrow's planned routes for every
	// active vehicle that does not have them yet.
	ManageTransportRoutes(ctx context.Context, now time.Time) (*CronResult, error)

	// RunDailyMaintenance prunes old locations, closes stale routes,
	// deactivates unused push subscriptions and creates evaluation-ready
	// notices.
	RunDailyMaintenance(ctx context.Context, now time.Time) (*MaintenanceResult, error)
}
