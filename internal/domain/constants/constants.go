// Package constants holds shared string constants used across layers.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Realtime relay provider types.
const (
	RelayProviderRedis = "redis"
	RelayProviderLocal = "local"
)

// Cron job names recorded in cron_logs.
const (
	JobMedicalReminders = "check-medical-reminders"
	JobRoutineReminders = "check-routine-reminders"
	JobDailyMaintenance = "daily-maintenance"
	JobManageRoutes     = "manage-transport-routes"
	JobDispatchPending  = "dispatch-pending-notifications"
)

// Cron run statuses.
const (
	CronStatusCompleted = "completed"
	CronStatusFailed    = "failed"
)
