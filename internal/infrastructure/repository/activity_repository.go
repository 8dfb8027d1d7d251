package repository

import (
	"context"

	"github.com/abicrealty/voucher-api/internal/domain/entity"
	domainRepo "github.com/abicrealty/voucher-api/internal/domain/repository"
	"gorm.io/gorm"
)

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) domainRepo.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, log *entity.ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *activityLogRepository) List(ctx context.Context, params *domainRepo.ActivityLogFilterParams) ([]entity.ActivityLog, int64, error) {
	var logs []entity.ActivityLog
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ActivityLog{})

	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}

	if params.EntityType != "" {
		query = query.Where("entity_type = ?", params.EntityType)
	}

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("details ILIKE ? OR entity_id ILIKE ? OR actor_email ILIKE ?",
			pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&logs).Error

	return logs, total, err
}
