package service

import (
	"context"

	"github.com/abicrealty/voucher-api/internal/domain/entity"
	"github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/abicrealty/voucher-api/pkg/pagination"
	"github.com/rs/zerolog/log"
)

// ActivityService records and lists auditable actions
type ActivityService struct {
	activityRepo repository.ActivityLogRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repository.ActivityLogRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// Record persists an activity entry. Recording is best-effort: a failure is
// logged but never fails the operation that triggered it.
func (s *ActivityService) Record(ctx context.Context, actor Actor, action, entityType, entityID, details string) {
	entry := &entity.ActivityLog{
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).
			Str("action", action).
			Str("entity_type", entityType).
			Msg("failed to record activity")
	}
}

// List returns activity entries filtered by action, entity type and search term
func (s *ActivityService) List(ctx context.Context, params *repository.ActivityLogFilterParams) (*pagination.PaginatedResult[entity.ActivityLog], error) {
	logs, total, err := s.activityRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(logs, pag), nil
}
