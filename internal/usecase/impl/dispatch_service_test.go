package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"canino/config"
	"canino/internal/domain/entity"
	"canino/internal/domain/repository"
	"canino/internal/domain/service"
	mockRepo "canino/internal/mocks/repository"
	mockSvc "canino/internal/mocks/service"
	"canino/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDispatchService(t *testing.T) (
	usecase.DispatchUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockSubscriptionRepository,
	*mockSvc.MockPushSender,
	*mockSvc.MockMobilePushSender,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	mobileSender := mockSvc.NewMockMobilePushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Reminders: &config.RemindersConfig{DispatchBatchSize: 50},
	}

	svc := NewDispatchService(logger, cfg, notificationRepo, subscriptionRepo, pushSender, mobileSender)

	return svc, notificationRepo, subscriptionRepo, pushSender, mobileSender
}

func testSubscription(userID uuid.UUID) *entity.PushSubscription {
	return &entity.PushSubscription{
		ID:       uuid.New(),
		UserID:   userID,
		Endpoint: "https://fcm.googleapis.com/fcm/send/" + uuid.NewString(),
		P256dh:   "BPk",
		Auth:     "abc",
		Active:   true,
	}
}

func testPendingNotification(userID uuid.UUID, templateKey string) *entity.ScheduledNotification {
	dogID := uuid.New()

	return &entity.ScheduledNotification{
		ID:          uuid.New(),
		UserID:      userID,
		DogID:       &dogID,
		TemplateKey: templateKey,
		Variables:   map[string]string{"dogName": "Rocky", "time": "08:30", "routeType": "recogida"},
		Status:      entity.NotificationStatusPending,
	}
}

func TestDispatchService_HandleTransportEvent_StopCompletedPickup(t *testing.T) {
	svc, notificationRepo, subscriptionRepo, pushSender, _ := createTestDispatchService(t)

	ctx := context.Background()
	guardianID := uuid.New()
	dogID := uuid.New()
	occurredAt := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	event := &service.NotificationEvent{
		EventType:  service.EventStopCompleted,
		RouteID:    uuid.NewString(),
		RouteType:  string(entity.RouteTypePickup),
		DogID:      dogID.String(),
		DogName:    "Rocky",
		GuardianID: guardianID.String(),
		OccurredAt: occurredAt,
	}
	sub := testSubscription(guardianID)

	notificationRepo.EXPECT().NotificationExists(ctx, guardianID, mock.Anything, TemplateStopCompletedPickup, occurredAt).Return(false, nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Run(func(_ context.Context, n *entity.ScheduledNotification) {
		n.ID = uuid.New()
		assert.Equal(t, guardianID, n.UserID)
		require.NotNil(t, n.DogID)
		assert.Equal(t, dogID, *n.DogID)
		assert.Equal(t, "Rocky", n.Variables["dogName"])
		assert.Equal(t, "08:30", n.Variables["time"])
		assert.Equal(t, "recogida", n.Variables["routeType"])
	}).Return(nil)
	subscriptionRepo.EXPECT().FindActiveSubscriptionsByUser(ctx, guardianID).Return([]*entity.PushSubscription{sub}, nil)
	pushSender.EXPECT().Send(ctx, sub, mock.Anything).Run(func(_ context.Context, _ *entity.PushSubscription, payload *service.PushPayload) {
		assert.Equal(t, "¡Rocky va en camino!", payload.Title)
		assert.Contains(t, payload.Body, "08:30")
	}).Return(nil)
	subscriptionRepo.EXPECT().TouchSubscription(ctx, sub.ID, mock.Anything).Return(nil)
	notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Return(nil)
	notificationRepo.EXPECT().UpdateNotificationStatus(ctx, mock.Anything, entity.NotificationStatusSent, "delivered to 1/1 subscriptions").Return(nil)

	err := svc.HandleTransportEvent(ctx, event)

	require.NoError(t, err)
}

func TestDispatchService_HandleTransportEvent_DropoffUsesDropoffTemplate(t *testing.T) {
	svc, notificationRepo, subscriptionRepo, pushSender, _ := createTestDispatchService(t)

	ctx := context.Background()
	guardianID := uuid.New()
	event := &service.NotificationEvent{
		EventType:  service.EventStopCompleted,
		RouteType:  string(entity.RouteTypeDropoff),
		DogID:      uuid.NewString(),
		DogName:    "Luna",
		GuardianID: guardianID.String(),
		OccurredAt: time.Now(),
	}
	sub := testSubscription(guardianID)

	notificationRepo.EXPECT().NotificationExists(ctx, guardianID, mock.Anything, TemplateStopCompletedDropoff, mock.Anything).Return(false, nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	subscriptionRepo.EXPECT().FindActiveSubscriptionsByUser(ctx, guardianID).Return([]*entity.PushSubscription{sub}, nil)
	pushSender.EXPECT().Send(ctx, sub, mock.Anything).Run(func(_ context.Context, _ *entity.PushSubscription, payload *service.PushPayload) {
		assert.Equal(t, "¡Luna llegó a casa!", payload.Title)
	}).Return(nil)
	subscriptionRepo.EXPECT().TouchSubscription(ctx, sub.ID, mock.Anything).Return(nil)
	notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Return(nil)
	notificationRepo.EXPECT().UpdateNotificationStatus(ctx, mock.Anything, entity.NotificationStatusSent, mock.Anything).Return(nil)

	err := svc.HandleTransportEvent(ctx, event)

	require.NoError(t, err)
}

func TestDispatchService_HandleTransportEvent_DuplicateIsDropped(t *testing.T) {
	svc, notificationRepo, _, _, _ := createTestDispatchService(t)

	ctx := context.Background()
	guardianID := uuid.New()
	event := &service.NotificationEvent{
		EventType:  service.EventRouteStarted,
		RouteType:  string(entity.RouteTypePickup),
		DogID:      uuid.NewString(),
		DogName:    "Rocky",
		GuardianID: guardianID.String(),
		OccurredAt: time.Now(),
	}

	notificationRepo.EXPECT().NotificationExists(ctx, guardianID, mock.Anything, TemplateRouteStarted, mock.Anything).Return(false, nil)
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(repository.ErrDuplicateNotification)

	err := svc.HandleTransportEvent(ctx, event)

	require.NoError(t, err)
}

func TestDispatchService_HandleTransportEvent_ExistingNotificationSkipsDelivery(t *testing.T) {
	svc, notificationRepo, _, _, _ := createTestDispatchService(t)

	ctx := context.Background()
	guardianID := uuid.New()
	event := &service.NotificationEvent{
		EventType:  service.EventRouteCompleted,
		RouteType:  string(entity.RouteTypeDropoff),
		DogID:      uuid.NewString(),
		GuardianID: guardianID.String(),
		OccurredAt: time.Now(),
	}

	notificationRepo.EXPECT().NotificationExists(ctx, guardianID, mock.Anything, TemplateRouteCompleted, mock.Anything).Return(true, nil)

	err := svc.HandleTransportEvent(ctx, event)

	require.NoError(t, err)
}

func TestDispatchService_HandleTransportEvent_UnknownEventType(t *testing.T) {
	svc, _, _, _, _ := createTestDispatchService(t)

	err := svc.HandleTransportEvent(context.Background(), &service.NotificationEvent{
		EventType:  "vehicle_washed",
		GuardianID: uuid.NewString(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport event type")
}

func TestDispatchService_HandleTransportEvent_InvalidGuardianID(t *testing.T) {
	svc, _, _, _, _ := createTestDispatchService(t)

	err := svc.HandleTransportEvent(context.Background(), &service.NotificationEvent{
		EventType:  service.EventRouteStarted,
		GuardianID: "not-a-uuid",
	})

	require.Error(t, err)
}

func TestDispatchService_DispatchPending_MixedOutcomes(t *testing.T) {
	svc, notificationRepo, subscriptionRepo, pushSender, _ := createTestDispatchService(t)

	ctx := context.Background()
	now := time.Now()
	okUser := uuid.New()
	silentUser := uuid.New()
	okNotification := testPendingNotification(okUser, TemplateVaccineDue)
	okNotification.Variables = map[string]string{"dogName": "Rocky", "vaccineName": "Rabia", "dueDate": "2026-03-15"}
	orphanNotification := testPendingNotification(silentUser, TemplateRoutineDue)
	sub := testSubscription(okUser)

	notificationRepo.EXPECT().FindPendingNotifications(ctx, now, 50).
		Return([]*entity.ScheduledNotification{okNotification, orphanNotification}, nil)

	subscriptionRepo.EXPECT().FindActiveSubscriptionsByUser(ctx, okUser).Return([]*entity.PushSubscription{sub}, nil)
	pushSender.EXPECT().Send(ctx, sub, mock.Anything).Return(nil)
	subscriptionRepo.EXPECT().TouchSubscription(ctx, sub.ID, mock.Anything).Return(nil)
	notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Return(nil)
	notificationRepo.EXPECT().UpdateNotificationStatus(ctx, okNotification.ID, entity.NotificationStatusSent, "delivered to 1/1 subscriptions").Return(nil)

	subscriptionRepo.EXPECT().FindActiveSubscriptionsByUser(ctx, silentUser).Return(nil, nil)
	notificationRepo.EXPECT().UpdateNotificationStatus(ctx, orphanNotification.ID, entity.NotificationStatusFailed, "no active subscriptions").Return(nil)

	result, err := svc.DispatchPending(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Dispatched)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Errors, 1)
}

func TestDispatchService_DispatchPending_GoneSubscriptionIsDeactivated(t *testing.T) {
	svc, notificationRepo, subscriptionRepo, pushSender, _ := createTestDispatchService(t)

	ctx := context.Background()
	now := time.Now()
	userID := uuid.New()
	notification := testPendingNotification(userID, TemplateStopCompletedPickup)
	goneSub := testSubscription(userID)
	liveSub := testSubscription(userID)

	notificationRepo.EXPECT().FindPendingNotifications(ctx, now, 50).
		Return([]*entity.ScheduledNotification{notification}, nil)
	subscriptionRepo.EXPECT().FindActiveSubscriptionsByUser(ctx, userID).
		Return([]*entity.PushSubscription{goneSub, liveSub}, nil)
	pushSender.EXPECT().Send(ctx, goneSub, mock.Anything).Return(service.ErrSubscriptionGone)
	subscriptionRepo.EXPECT().DeactivateSubscription(ctx, goneSub.ID).Return(nil)
	pushSender.EXPECT().Send(ctx, liveSub, mock.Anything).Return(nil)
	subscriptionRepo.EXPECT().TouchSubscription(ctx, liveSub.ID, mock.Anything).Return(nil)
	notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Run(func(_ context.Context, logs []*entity.NotificationLog) {
		require.Len(t, logs, 2)
		assert.Equal(t, "failed", logs[0].Status)
		assert.Equal(t, "sent", logs[1].Status)
	}).Return(nil)
	notificationRepo.EXPECT().UpdateNotificationStatus(ctx, notification.ID, entity.NotificationStatusSent, "delivered to 1/2 subscriptions").Return(nil)

	result, err := svc.DispatchPending(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Failed)
}

func TestDispatchService_DispatchPending_AllDeliveriesFail(t *testing.T) {
	svc, notificationRepo, subscriptionRepo, pushSender, _ := createTestDispatchService(t)

	ctx := context.Background()
	now := time.Now()
	userID := uuid.New()
	notification := testPendingNotification(userID, TemplateRouteCompleted)
	sub := testSubscription(userID)

	notificationRepo.EXPECT().FindPendingNotifications(ctx, now, 50).
		Return([]*entity.ScheduledNotification{notification}, nil)
	subscriptionRepo.EXPECT().FindActiveSubscriptionsByUser(ctx, userID).
		Return([]*entity.PushSubscription{sub}, nil)
	pushSender.EXPECT().Send(ctx, sub, mock.Anything).Return(errors.New("push service unavailable"))
	notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Return(nil)
	notificationRepo.EXPECT().UpdateNotificationStatus(ctx, notification.ID, entity.NotificationStatusFailed, "delivered to 0/1 subscriptions").Return(nil)

	result, err := svc.DispatchPending(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
}

func TestDispatchService_DispatchPending_MobileEndpointUsesFCM(t *testing.T) {
	svc, notificationRepo, subscriptionRepo, _, mobileSender := createTestDispatchService(t)

	ctx := context.Background()
	now := time.Now()
	userID := uuid.New()
	notification := testPendingNotification(userID, TemplateStopCompletedPickup)

	sub := testSubscription(userID)
	sub.Endpoint = "fcm:device-token-123"

	notificationRepo.EXPECT().FindPendingNotifications(ctx, now, 50).
		Return([]*entity.ScheduledNotification{notification}, nil)
	subscriptionRepo.EXPECT().FindActiveSubscriptionsByUser(ctx, userID).
		Return([]*entity.PushSubscription{sub}, nil)
	mobileSender.EXPECT().SendToToken(ctx, "device-token-123", mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, title, _ string, _ map[string]string) {
			assert.Equal(t, "¡Rocky va en camino!", title)
		}).Return(nil)
	subscriptionRepo.EXPECT().TouchSubscription(ctx, sub.ID, mock.Anything).Return(nil)
	notificationRepo.EXPECT().BatchCreateNotificationLogs(ctx, mock.Anything).Return(nil)
	notificationRepo.EXPECT().UpdateNotificationStatus(ctx, notification.ID, entity.NotificationStatusSent, "delivered to 1/1 subscriptions").Return(nil)

	result, err := svc.DispatchPending(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}
