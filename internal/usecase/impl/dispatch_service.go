package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"canino/config"
	"canino/internal/domain/entity"
	"canino/internal/domain/repository"
	"canino/internal/domain/service"
	"canino/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultDispatchBatchSize = 50

// mobileEndpointScheme marks a subscription whose endpoint carries an FCM
// device token instead of a Web Push URL.
const mobileEndpointScheme = "fcm:"

type dispatchService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	subscriptionRepo repository.SubscriptionRepository
	pushSender       service.PushSender
	mobileSender     service.MobilePushSender

	batchSize int
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	logger *slog.Logger,
	cfg *config.Config,
	notificationRepo repository.NotificationRepository,
	subscriptionRepo repository.SubscriptionRepository,
	pushSender service.PushSender,
	mobileSender service.MobilePushSender,
) usecase.DispatchUsecase {
	batchSize := defaultDispatchBatchSize
	if cfg.Reminders != nil && cfg.Reminders.DispatchBatchSize > 0 {
		batchSize = cfg.Reminders.DispatchBatchSize
	}

	return &dispatchService{
		logger:           logger,
		notificationRepo: notificationRepo,
		subscriptionRepo: subscriptionRepo,
		pushSender:       pushSender,
		mobileSender:     mobileSender,
		batchSize:        batchSize,
	}
}

// HandleTransportEvent converts a transport event into a guardian
// notification and delivers it immediately. Redelivered messages and
// repeated events for the same day land on the dedup constraint and are
// dropped silently.
func (s *dispatchService) HandleTransportEvent(ctx context.Context, event *service.NotificationEvent) error {
	templateKey, err := transportTemplateKey(event)
	if err != nil {
		return err
	}

	guardianID, err := uuid.Parse(event.GuardianID)
	if err != nil {
		return errors.Wrapf(err, "invalid guardian id %q", event.GuardianID)
	}

	var dogID *uuid.UUID
	if event.DogID != "" {
		id, err := uuid.Parse(event.DogID)
		if err != nil {
			return errors.Wrapf(err, "invalid dog id %q", event.DogID)
		}
		dogID = &id
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	exists, err := s.notificationRepo.NotificationExists(ctx, guardianID, dogID, templateKey, occurredAt)
	if err != nil {
		return errors.Wrap(err, "failed to check notification existence")
	}
	if exists {
		return nil
	}

	notification := &entity.ScheduledNotification{
		UserID:      guardianID,
		DogID:       dogID,
		TemplateKey: templateKey,
		Variables: map[string]string{
			"dogName":   event.DogName,
			"time":      occurredAt.Format("15:04"),
			"routeType": routeTypeText(event.RouteType),
		},
		ScheduledFor: occurredAt,
		Status:       entity.NotificationStatusPending,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		// Pub/Sub redelivered the message; the first delivery won.
		if errors.Is(err, repository.ErrDuplicateNotification) {
			return nil
		}

		return errors.Wrap(err, "failed to create notification")
	}

	s.dispatchOne(ctx, notification)

	return nil
}

// DispatchPending delivers due pending notifications. Each notification is
// attempted exactly once; the outcome is recorded as sent or failed and the
// row never returns to pending.
func (s *dispatchService) DispatchPending(ctx context.Context, now time.Time) (*usecase.DispatchResult, error) {
	notifications, err := s.notificationRepo.FindPendingNotifications(ctx, now, s.batchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending notifications")
	}

	result := &usecase.DispatchResult{}
	for _, notification := range notifications {
		result.Dispatched++

		if s.dispatchOne(ctx, notification) {
			result.Sent++
		} else {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("notification %s: delivery failed", notification.ID))
		}
	}

	return result, nil
}

// dispatchOne pushes a notification to every active subscription of its
// user, records the per-subscription attempts and marks the notification's
// terminal status. Returns whether at least one delivery succeeded.
func (s *dispatchService) dispatchOne(ctx context.Context, notification *entity.ScheduledNotification) bool {
	title, body, err := renderTemplate(notification.TemplateKey, notification.Variables)
	if err != nil {
		s.logger.Error("Failed to render notification template",
			slog.String("notification_id", notification.ID.String()),
			slog.String("template_key", notification.TemplateKey),
			slog.String("error", err.Error()),
		)
		s.finishNotification(ctx, notification.ID, entity.NotificationStatusFailed, "template render failed")

		return false
	}

	subscriptions, err := s.subscriptionRepo.FindActiveSubscriptionsByUser(ctx, notification.UserID)
	if err != nil {
		s.logger.Error("Failed to load subscriptions",
			slog.String("notification_id", notification.ID.String()),
			slog.String("error", err.Error()),
		)
		s.finishNotification(ctx, notification.ID, entity.NotificationStatusFailed, "subscription lookup failed")

		return false
	}

	if len(subscriptions) == 0 {
		s.finishNotification(ctx, notification.ID, entity.NotificationStatusFailed, "no active subscriptions")

		return false
	}

	payload := &service.PushPayload{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"notification_id": notification.ID.String(),
			"template_key":    notification.TemplateKey,
		},
	}

	sentAt := time.Now()
	logs := make([]*entity.NotificationLog, 0, len(subscriptions))

	var delivered int
	for _, sub := range subscriptions {
		log := &entity.NotificationLog{
			NotificationID: notification.ID,
			UserID:         notification.UserID,
			SubscriptionID: sub.ID,
			Status:         "sent",
			SentAt:         sentAt,
		}

		if err := s.deliver(ctx, sub, payload); err != nil {
			log.Status = "failed"
			log.ErrorMessage = err.Error()

			if errors.Is(err, service.ErrSubscriptionGone) {
				if err := s.subscriptionRepo.DeactivateSubscription(ctx, sub.ID); err != nil {
					s.logger.Warn("Failed to deactivate gone subscription",
						slog.String("subscription_id", sub.ID.String()),
						slog.String("error", err.Error()),
					)
				}
			} else {
				s.logger.Warn("Push delivery failed",
					slog.String("subscription_id", sub.ID.String()),
					slog.String("error", err.Error()),
				)
			}
		} else {
			delivered++
			if err := s.subscriptionRepo.TouchSubscription(ctx, sub.ID, sentAt); err != nil {
				s.logger.Warn("Failed to touch subscription",
					slog.String("subscription_id", sub.ID.String()),
					slog.String("error", err.Error()),
				)
			}
		}

		logs = append(logs, log)
	}

	if err := s.notificationRepo.BatchCreateNotificationLogs(ctx, logs); err != nil {
		s.logger.Warn("Failed to persist notification logs",
			slog.String("notification_id", notification.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	status := entity.NotificationStatusSent
	deliveryStatus := fmt.Sprintf("delivered to %d/%d subscriptions", delivered, len(subscriptions))
	if delivered == 0 {
		status = entity.NotificationStatusFailed
	}
	s.finishNotification(ctx, notification.ID, status, deliveryStatus)

	return delivered > 0
}

// deliver routes the payload over the subscription's channel. The mobile
// app registers its FCM token as an "fcm:" endpoint through the same
// subscription store; everything else is a standard Web Push endpoint.
func (s *dispatchService) deliver(ctx context.Context, sub *entity.PushSubscription, payload *service.PushPayload) error {
	if token, ok := strings.CutPrefix(sub.Endpoint, mobileEndpointScheme); ok {
		if s.mobileSender == nil {
			return errors.New("mobile push channel not configured")
		}

		return s.mobileSender.SendToToken(ctx, token, payload.Title, payload.Body, payload.Data)
	}

	return s.pushSender.Send(ctx, sub, payload)
}

func (s *dispatchService) finishNotification(ctx context.Context, id uuid.UUID, status entity.NotificationStatus, deliveryStatus string) {
	if err := s.notificationRepo.UpdateNotificationStatus(ctx, id, status, deliveryStatus); err != nil {
		s.logger.Error("Failed to update notification status",
			slog.String("notification_id", id.String()),
			slog.String("error", err.Error()),
		)
	}
}

// routeTypeText localizes the route direction for notification texts.
func routeTypeText(routeType string) string {
	switch routeType {
	case string(entity.RouteTypeDropoff):
		return "entrega"
	case string(entity.RouteTypePickup):
		return "recogida"
	default:
		return routeType
	}
}

// transportTemplateKey maps a transport event to its notification template.
func transportTemplateKey(event *service.NotificationEvent) (string, error) {
	switch event.EventType {
	case service.EventStopCompleted:
		if event.RouteType == string(entity.RouteTypeDropoff) {
			return TemplateStopCompletedDropoff, nil
		}

		return TemplateStopCompletedPickup, nil
	case service.EventRouteStarted:
		return TemplateRouteStarted, nil
	case service.EventRouteCompleted:
		return TemplateRouteCompleted, nil
	default:
		return "", errors.Errorf("unknown transport event type %q", event.EventType)
	}
}
