package handler

import (
	"context"
	"time"

	"github.com/abicrealty/voucher-api/internal/application/service"
	"github.com/abicrealty/voucher-api/internal/domain/entity"
	"github.com/abicrealty/voucher-api/internal/domain/enum"
	"github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/abicrealty/voucher-api/internal/presentation/http/dto/request"
	"github.com/abicrealty/voucher-api/internal/presentation/http/dto/response"
	"github.com/abicrealty/voucher-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CashVoucherHandler handles cash voucher HTTP requests
type CashVoucherHandler struct {
	voucherService *service.CashVoucherService
}

// NewCashVoucherHandler creates a new cash voucher handler
func NewCashVoucherHandler(voucherService *service.CashVoucherService) *CashVoucherHandler {
	return &CashVoucherHandler{voucherService: voucherService}
}

func (h *CashVoucherHandler) toInput(req *request.CashVoucherRequest) *service.CashVoucherInput {
	accountID, _ := uuid.Parse(req.AccountID)

	input := &service.CashVoucherInput{
		AccountID:         accountID,
		VoucherNumber:     req.VoucherNumber,
		PaidTo:            req.PaidTo,
		Date:              req.Date,
		Particulars:       req.Particulars,
		Amount:            req.Amount,
		Signature:         req.Signature,
		PrintedName:       req.PrintedName,
		ApprovedSignature: req.ApprovedSignature,
		ApprovedName:      req.ApprovedName,
		ApprovedDate:      req.ApprovedDate,
	}
	for _, item := range req.ParticularsItems {
		input.Items = append(input.Items, service.CashVoucherItemInput{
			Description: item.Description,
			Amount:      item.Amount,
		})
	}
	return input
}

// List handles listing cash vouchers with filters
func (h *CashVoucherHandler) List(c *gin.Context) {
	var p pagination.PaginationParams
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.CashVoucherFilterParams{
		Pagination: &p,
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if status, ok := enum.ParseVoucherStatus(statusStr); ok {
			params.Status = &status
		}
	}
	if accountIDStr := c.Query("account_id"); accountIDStr != "" {
		if accountID, err := uuid.Parse(accountIDStr); err == nil {
			params.AccountID = &accountID
		}
	}
	if startStr := c.Query("start_date"); startStr != "" {
		if start, err := time.Parse("2006-01-02", startStr); err == nil {
			params.StartDate = &start
		}
	}
	if endStr := c.Query("end_date"); endStr != "" {
		if end, err := time.Parse("2006-01-02", endStr); err == nil {
			params.EndDate = &end
		}
	}

	result, err := h.voucherService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Cash vouchers retrieved successfully", result)
}

// Create handles creating a new cash voucher
func (h *CashVoucherHandler) Create(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CashVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	voucher, err := h.voucherService.Create(c.Request.Context(), *actor, h.toInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cash voucher created successfully", gin.H{"voucher": voucher})
}

// Get handles fetching a single cash voucher
func (h *CashVoucherHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	voucher, err := h.voucherService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash voucher retrieved successfully", gin.H{"voucher": voucher})
}

// Update handles updating a cash voucher
func (h *CashVoucherHandler) Update(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	var req request.CashVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	voucher, err := h.voucherService.Update(c.Request.Context(), *actor, id, h.toInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash voucher updated successfully", gin.H{"voucher": voucher})
}

// Delete handles deleting a cash voucher
func (h *CashVoucherHandler) Delete(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	if err := h.voucherService.Delete(c.Request.Context(), *actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash voucher deleted successfully", nil)
}

// GenerateNumber handles fetching the next voucher number for an account
func (h *CashVoucherHandler) GenerateNumber(c *gin.Context) {
	accountID, err := accountIDParam(c)
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	number, err := h.voucherService.GenerateNumber(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Voucher number generated", gin.H{"voucher_number": number})
}

// Approve handles moving a voucher to approved
func (h *CashVoucherHandler) Approve(c *gin.Context) {
	h.transition(c, h.voucherService.Approve, "Cash voucher approved")
}

// MarkPaid handles moving a voucher to paid
func (h *CashVoucherHandler) MarkPaid(c *gin.Context) {
	h.transition(c, h.voucherService.MarkPaid, "Cash voucher marked as paid")
}

// Cancel handles voiding a voucher
func (h *CashVoucherHandler) Cancel(c *gin.Context) {
	h.transition(c, h.voucherService.Cancel, "Cash voucher cancelled")
}

func (h *CashVoucherHandler) transition(
	c *gin.Context,
	fn func(ctx context.Context, actor service.Actor, id uuid.UUID) (*entity.CashVoucher, error),
	message string,
) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	voucher, err := fn(c.Request.Context(), *actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, message, gin.H{"voucher": voucher})
}

// Export handles rendering the voucher as a downloadable JPEG
func (h *CashVoucherHandler) Export(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	output, err := h.voucherService.Export(c.Request.Context(), *actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	c.Data(200, "image/jpeg", output.JPEG)
}
