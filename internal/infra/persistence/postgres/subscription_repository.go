// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	"canino/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// UpsertSubscription persists a subscription by endpoint. Browsers rotate
// subscriptions and users log in on shared devices, so a known endpoint is
// rebound to the current user and reactivated instead of duplicated.
func (repo *subscriptionRepository) UpsertSubscription(ctx context.Context, sub *entity.PushSubscription) error {
	subM := fromPushSubscriptionDomain(sub)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "user_role", "p256dh", "auth", "device_info", "is_active", "last_used_at",
			}),
		}).
		Create(subM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert subscription")
	}

	// Update the entity with generated values
	sub.ID = subM.ID
	sub.CreatedAt = subM.CreatedAt

	return nil
}

// FindActiveSubscriptionsByUser retrieves a user's active subscriptions.
func (repo *subscriptionRepository) FindActiveSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushSubscription, error) {
	var subscriptionModels []*model.PushSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions by user")
	}

	subscriptions := make([]*entity.PushSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toPushSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// DeactivateSubscription marks one subscription inactive.
func (repo *subscriptionRepository) DeactivateSubscription(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeactivateSubscriptionByEndpoint marks the subscription with the given endpoint inactive.
func (repo *subscriptionRepository) DeactivateSubscriptionByEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate subscription by endpoint")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// TouchSubscription updates LastUsedAt after a successful delivery.
func (repo *subscriptionRepository) TouchSubscription(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("id = ?", id).
		Update("last_used_at", at)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeactivateSubscriptionsUnusedSince marks subscriptions inactive whose last
// use predates the cutoff.
func (repo *subscriptionRepository) DeactivateSubscriptionsUnusedSince(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PushSubscriptionModel{}).
		Where("is_active = ? AND last_used_at < ?", true, cutoff).
		Update("is_active", false)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate unused subscriptions")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toPushSubscriptionDomain converts a GORM PushSubscriptionModel to a domain PushSubscription entity.
func toPushSubscriptionDomain(data *model.PushSubscriptionModel) *entity.PushSubscription {
	if data == nil {
		return nil
	}

	return &entity.PushSubscription{
		ID:         data.ID,
		UserID:     data.UserID,
		UserRole:   entity.Role(data.UserRole),
		Endpoint:   data.Endpoint,
		P256dh:     data.P256dh,
		Auth:       data.Auth,
		DeviceInfo: data.DeviceInfo,
		Active:     data.IsActive,
		CreatedAt:  data.CreatedAt,
		LastUsedAt: data.LastUsedAt,
	}
}

// fromPushSubscriptionDomain converts a domain PushSubscription entity to a GORM PushSubscriptionModel.
func fromPushSubscriptionDomain(data *entity.PushSubscription) *model.PushSubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.PushSubscriptionModel{
		ID:         data.ID,
		UserID:     data.UserID,
		UserRole:   string(data.UserRole),
		Endpoint:   data.Endpoint,
		P256dh:     data.P256dh,
		Auth:       data.Auth,
		DeviceInfo: data.DeviceInfo,
		IsActive:   data.Active,
		CreatedAt:  data.CreatedAt,
		LastUsedAt: data.LastUsedAt,
	}
}
