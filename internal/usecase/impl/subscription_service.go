package impl

import (
	"context"
	"log/slog"
	"time"

	"canino/config"
	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	"canino/internal/domain/service"
	"canino/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type subscriptionService struct {
	logger           *slog.Logger
	subscriptionRepo repository.SubscriptionRepository
	pushSender       service.PushSender

	vapidPublicKey string
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(
	logger *slog.Logger,
	cfg *config.Config,
	subscriptionRepo repository.SubscriptionRepository,
	pushSender service.PushSender,
) usecase.SubscriptionUsecase {
	vapidPublicKey := ""
	if cfg.WebPush != nil {
		vapidPublicKey = cfg.WebPush.VAPIDPublicKey
	}

	return &subscriptionService{
		logger:           logger,
		subscriptionRepo: subscriptionRepo,
		pushSender:       pushSender,
		vapidPublicKey:   vapidPublicKey,
	}
}

// Subscribe upserts a subscription by endpoint. A browser that resubscribes
// after clearing site data reuses its endpoint row instead of piling up
// dead ones.
func (s *subscriptionService) Subscribe(ctx context.Context, userID uuid.UUID, role entity.Role, input *usecase.SubscribeInput) (*entity.PushSubscription, error) {
	sub := &entity.PushSubscription{
		UserID:     userID,
		UserRole:   role,
		Endpoint:   input.Endpoint,
		P256dh:     input.P256dh,
		Auth:       input.Auth,
		DeviceInfo: input.DeviceInfo,
		Active:     true,
		LastUsedAt: time.Now(),
	}

	if err := s.subscriptionRepo.UpsertSubscription(ctx, sub); err != nil {
		return nil, errors.Wrap(err, "failed to save subscription")
	}

	return sub, nil
}

// Unsubscribe deactivates the user's subscription with the endpoint.
func (s *subscriptionService) Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) error {
	err := s.subscriptionRepo.DeactivateSubscriptionByEndpoint(ctx, userID, endpoint)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to deactivate subscription")
	}

	return nil
}

// GetVAPIDPublicKey exposes the public key the client needs to subscribe.
func (s *subscriptionService) GetVAPIDPublicKey() string {
	return s.vapidPublicKey
}

// SendTestNotification pushes a canned payload to all of the user's active
// subscriptions.
func (s *subscriptionService) SendTestNotification(ctx context.Context, userID uuid.UUID) error {
	subscriptions, err := s.subscriptionRepo.FindActiveSubscriptionsByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load subscriptions")
	}
	if len(subscriptions) == 0 {
		return domainerrors.ErrSubscriptionNotFound
	}

	title, body, err := renderTemplate(TemplateTestNotification, nil)
	if err != nil {
		return err
	}

	payload := &service.PushPayload{Title: title, Body: body}

	var delivered int
	for _, sub := range subscriptions {
		if err := s.pushSender.Send(ctx, sub, payload); err != nil {
			if errors.Is(err, service.ErrSubscriptionGone) {
				if err := s.subscriptionRepo.DeactivateSubscription(ctx, sub.ID); err != nil {
					s.logger.Warn("Failed to deactivate gone subscription",
						slog.String("subscription_id", sub.ID.String()),
						slog.String("error", err.Error()),
					)
				}

				continue
			}

			s.logger.Warn("Test push delivery failed",
				slog.String("subscription_id", sub.ID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}

		delivered++
	}

	if delivered == 0 {
		return domainerrors.ErrPushDeliveryFailed
	}

	return nil
}
