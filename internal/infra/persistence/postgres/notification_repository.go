// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	"canino/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a scheduled notification. The unique index on
// (user, dog, template, scheduled date) is the final guard against duplicate
// reminders; a violation surfaces as ErrDuplicateNotification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.ScheduledNotification) error {
	notificationM, err := fromNotificationDomain(notification)
	if err != nil {
		return errors.Wrap(err, "failed to encode notification variables")
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateNotification
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or dog reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// NotificationExists reports whether a notification already exists for the
// (user, dog, template) tuple on the given date.
func (repo *notificationRepository) NotificationExists(ctx context.Context, userID uuid.UUID, dogID *uuid.UUID, templateKey string, date time.Time) (bool, error) {
	var count int64

	query := repo.db.WithContext(ctx).
		Model(&model.ScheduledNotificationModel{}).
		Where("user_id = ? AND template_key = ? AND scheduled_date = ?",
			userID, templateKey, dedupDate(date).Format("2006-01-02"))

	if dogID != nil {
		query = query.Where("dog_id = ?", *dogID)
	} else {
		query = query.Where("dog_id IS NULL")
	}

	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check notification existence")
	}

	return count > 0, nil
}

// FindPendingNotifications retrieves pending notifications due on or before
// the given time, oldest first.
func (repo *notificationRepository) FindPendingNotifications(ctx context.Context, dueBy time.Time, limit int) ([]*entity.ScheduledNotification, error) {
	var notificationModels []*model.ScheduledNotificationModel

	query := repo.db.WithContext(ctx).
		Where("status = ? AND scheduled_for <= ?", string(entity.NotificationStatusPending), dueBy).
		Order("scheduled_for ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending notifications")
	}

	notifications := make([]*entity.ScheduledNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notification, err := toNotificationDomain(notificationM)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode notification variables")
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// UpdateNotificationStatus records the one-shot delivery outcome.
func (repo *notificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status entity.NotificationStatus, deliveryStatus string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ScheduledNotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          string(status),
			"delivery_status": deliveryStatus,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// BatchCreateNotificationLogs persists delivery attempt logs in a batch.
func (repo *notificationRepository) BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	// Use GORM's CreateInBatches for efficient batch insertion
	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, 100).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notification logs")
	}

	// Update the entities with generated values
	for i, logM := range logModels {
		logs[i].ID = logM.ID
		logs[i].SentAt = logM.SentAt
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM ScheduledNotificationModel to a domain ScheduledNotification entity.
func toNotificationDomain(data *model.ScheduledNotificationModel) (*entity.ScheduledNotification, error) {
	if data == nil {
		return nil, nil
	}

	variables := map[string]string{}
	if len(data.Variables) > 0 {
		if err := json.Unmarshal(data.Variables, &variables); err != nil {
			return nil, err
		}
	}

	return &entity.ScheduledNotification{
		ID:             data.ID,
		UserID:         data.UserID,
		DogID:          data.DogID,
		TemplateKey:    data.TemplateKey,
		Variables:      variables,
		ScheduledFor:   data.ScheduledFor,
		Status:         entity.NotificationStatus(data.Status),
		DeliveryStatus: data.DeliveryStatus,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}, nil
}

// dedupDate collapses a timestamp to its local calendar day. The stored
// dedup key and NotificationExists must both use this: Truncate would key on
// the UTC-epoch day instead, which drifts off the wall-clock day in any
// non-UTC zone and breaks dedup around UTC midnight.
func dedupDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// fromNotificationDomain converts a domain ScheduledNotification entity to a GORM ScheduledNotificationModel.
func fromNotificationDomain(data *entity.ScheduledNotification) (*model.ScheduledNotificationModel, error) {
	if data == nil {
		return nil, nil
	}

	var variables []byte
	if len(data.Variables) > 0 {
		encoded, err := json.Marshal(data.Variables)
		if err != nil {
			return nil, err
		}
		variables = encoded
	}

	return &model.ScheduledNotificationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		DogID:          data.DogID,
		TemplateKey:    data.TemplateKey,
		Variables:      variables,
		ScheduledFor:   data.ScheduledFor,
		ScheduledDate:  dedupDate(data.ScheduledFor),
		Status:         string(data.Status),
		DeliveryStatus: data.DeliveryStatus,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}, nil
}

// fromNotificationLogDomain converts a domain NotificationLog entity to a GORM NotificationLogModel.
func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		UserID:         data.UserID,
		SubscriptionID: data.SubscriptionID,
		Status:         data.Status,
		ErrorMessage:   data.ErrorMessage,
		SentAt:         data.SentAt,
	}
}
