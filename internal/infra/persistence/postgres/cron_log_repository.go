// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	"canino/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// cronLogRepository implements the repository.CronLogRepository interface.
type cronLogRepository struct {
	db *gorm.DB
}

// NewCronLogRepository is the constructor for cronLogRepository.
func NewCronLogRepository(db *gorm.DB) repository.CronLogRepository {
	return &cronLogRepository{
		db: db,
	}
}

// CreateCronLog persists one cron run summary.
func (repo *cronLogRepository) CreateCronLog(ctx context.Context, log *entity.CronLog) error {
	logM := fromCronLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create cron log")
	}

	log.ID = logM.ID

	return nil
}

// --- Mapper Functions ---

// fromCronLogDomain converts a domain CronLog entity to a GORM CronLogModel.
func fromCronLogDomain(data *entity.CronLog) *model.CronLogModel {
	if data == nil {
		return nil
	}

	return &model.CronLogModel{
		ID:                   data.ID,
		JobName:              data.JobName,
		Status:               data.Status,
		ItemsProcessed:       data.ItemsProcessed,
		NotificationsCreated: data.NotificationsCreated,
		ErrorCount:           data.ErrorCount,
		Details:              data.Details,
		StartedAt:            data.StartedAt,
		FinishedAt:           data.FinishedAt,
	}
}
