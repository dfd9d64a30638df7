package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "canino/internal/delivery/context"
	"canino/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CronHandler handles the scheduled job endpoints invoked by Cloud Scheduler.
// Each endpoint runs one job to completion and reports its summary; the
// scheduler retries on 5xx, so a failed run returns 500.
type CronHandler struct {
	logger     *slog.Logger
	reminderUC usecase.ReminderUsecase
	dispatchUC usecase.DispatchUsecase
}

// CronHandlerParams holds dependencies for the CronHandler
type CronHandlerParams struct {
	fx.In

	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
	DispatchUC usecase.DispatchUsecase
}

// NewCronHandler creates a new cron job handler
func NewCronHandler(params CronHandlerParams) *CronHandler {
	return &CronHandler{
		logger:     params.Logger,
		reminderUC: params.ReminderUC,
		dispatchUC: params.DispatchUC,
	}
}

// CheckMedicalReminders runs the due-vaccine and due-medicine scan.
func (h *CronHandler) CheckMedicalReminders(c echo.Context) error {
	result, err := h.reminderUC.CheckMedicalReminders(c.Request().Context(), time.Now())

	return h.respond(c, "check-medical-reminders", result, err)
}

// CheckRoutineReminders runs the routine scan for the current hour.
func (h *CronHandler) CheckRoutineReminders(c echo.Context) error {
	result, err := h.reminderUC.CheckRoutineReminders(c.Request().Context(), time.Now())

	return h.respond(c, "check-routine-reminders", result, err)
}

// ManageTransportRoutes generates tomorrow's planned routes.
func (h *CronHandler) ManageTransportRoutes(c echo.Context) error {
	result, err := h.reminderUC.ManageTransportRoutes(c.Request().Context(), time.Now())

	return h.respond(c, "manage-transport-routes", result, err)
}

// DailyMaintenance prunes locations, closes stale routes and expires
// unused push subscriptions.
func (h *CronHandler) DailyMaintenance(c echo.Context) error {
	result, err := h.reminderUC.RunDailyMaintenance(c.Request().Context(), time.Now())

	return h.respond(c, "daily-maintenance", result, err)
}

// DispatchPending delivers due pending notifications.
func (h *CronHandler) DispatchPending(c echo.Context) error {
	result, err := h.dispatchUC.DispatchPending(c.Request().Context(), time.Now())

	return h.respond(c, "dispatch-pending-notifications", result, err)
}

// respond renders the cron job outcome in the shape Cloud Scheduler expects.
func (h *CronHandler) respond(c echo.Context, job string, result any, err error) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	if err != nil {
		logger.Error("[Worker] Cron job failed",
			slog.String("job", job),
			slog.Any("error", err),
		)

		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
	}

	logger.Info("[Worker] Cron job completed", slog.String("job", job))

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"results": result,
	})
}
