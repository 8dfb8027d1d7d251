package repository

import (
	"context"

	"github.com/abicrealty/voucher-api/internal/domain/entity"
	"github.com/abicrealty/voucher-api/pkg/pagination"
)

// ActivityLogFilterParams contains filtering parameters for activity log queries
type ActivityLogFilterParams struct {
	Pagination *pagination.PaginationParams
	Action     string
	EntityType string
	Search     string
}

// ActivityLogRepository defines the interface for activity log operations
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	List(ctx context.Context, params *ActivityLogFilterParams) ([]entity.ActivityLog, int64, error)
}
