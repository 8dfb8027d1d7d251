package handler

import (
	"github.com/abicrealty/voucher-api/internal/application/service"
	"github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/abicrealty/voucher-api/internal/presentation/http/dto/response"
	"github.com/abicrealty/voucher-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// ActivityHandler handles activity log HTTP requests
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List handles listing activity entries
func (h *ActivityHandler) List(c *gin.Context) {
	var p pagination.PaginationParams
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.activityService.List(c.Request.Context(), &repository.ActivityLogFilterParams{
		Pagination: &p,
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		Search:     c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Activity log retrieved successfully", result)
}
