package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"canino/config"
	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	"canino/internal/domain/service"
	mockRepo "canino/internal/mocks/repository"
	mockSvc "canino/internal/mocks/service"
	"canino/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSubscriptionService(t *testing.T) (
	usecase.SubscriptionUsecase,
	*mockRepo.MockSubscriptionRepository,
	*mockSvc.MockPushSender,
) {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	pushSender := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		WebPush: &config.WebPushConfig{VAPIDPublicKey: "BHx-test-public-key"},
	}

	svc := NewSubscriptionService(logger, cfg, subscriptionRepo, pushSender)

	return svc, subscriptionRepo, pushSender
}

func TestSubscriptionService_Subscribe_Success(t *testing.T) {
	svc, subscriptionRepo, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	subscriptionRepo.EXPECT().UpsertSubscription(ctx, mock.Anything).Run(func(_ context.Context, sub *entity.PushSubscription) {
		assert.Equal(t, userID, sub.UserID)
		assert.Equal(t, entity.RoleParent, sub.UserRole)
		assert.Equal(t, "https://fcm.googleapis.com/fcm/send/abc", sub.Endpoint)
		assert.True(t, sub.Active)
		assert.False(t, sub.LastUsedAt.IsZero())
	}).Return(nil)

	sub, err := svc.Subscribe(ctx, userID, entity.RoleParent, &usecase.SubscribeInput{
		Endpoint:   "https://fcm.googleapis.com/fcm/send/abc",
		P256dh:     "BPk",
		Auth:       "secret",
		DeviceInfo: "Chrome / Android",
	})

	require.NoError(t, err)
	assert.Equal(t, "Chrome / Android", sub.DeviceInfo)
}

func TestSubscriptionService_Unsubscribe_NotFound(t *testing.T) {
	svc, subscriptionRepo, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	subscriptionRepo.EXPECT().DeactivateSubscriptionByEndpoint(ctx, userID, "https://endpoint").
		Return(repository.ErrSubscriptionNotFound)

	err := svc.Unsubscribe(ctx, userID, "https://endpoint")

	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_GetVAPIDPublicKey(t *testing.T) {
	svc, _, _ := createTestSubscriptionService(t)

	assert.Equal(t, "BHx-test-public-key", svc.GetVAPIDPublicKey())
}

func TestSubscriptionService_SendTestNotification_Success(t *testing.T) {
	svc, subscriptionRepo, pushSender := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sub := testSubscription(userID)

	subscriptionRepo.EXPECT().FindActiveSubscriptionsByUser(ctx, userID).
		Return([]*entity.PushSubscription{sub}, nil)
	pushSender.EXPECT().Send(ctx, sub, mock.Anything).Run(func(_ context.Context, _ *entity.PushSubscription, payload *service.PushPayload) {
		assert.Equal(t, "Notificación de prueba", payload.Title)
	}).Return(nil)

	err := svc.SendTestNotification(ctx, userID)

	require.NoError(t, err)
}

func TestSubscriptionService_SendTestNotification_NoSubscriptions(t *testing.T) {
	svc, subscriptionRepo, _ := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	subscriptionRepo.EXPECT().FindActiveSubscriptionsByUser(ctx, userID).Return(nil, nil)

	err := svc.SendTestNotification(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_SendTestNotification_GoneSubscriptionDeactivated(t *testing.T) {
	svc, subscriptionRepo, pushSender := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sub := testSubscription(userID)

	subscriptionRepo.EXPECT().FindActiveSubscriptionsByUser(ctx, userID).
		Return([]*entity.PushSubscription{sub}, nil)
	pushSender.EXPECT().Send(ctx, sub, mock.Anything).Return(service.ErrSubscriptionGone)
	subscriptionRepo.EXPECT().DeactivateSubscription(ctx, sub.ID).Return(nil)

	err := svc.SendTestNotification(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrPushDeliveryFailed)
}
