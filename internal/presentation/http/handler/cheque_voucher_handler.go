package handler

import (
	"time"

	"github.com/abicrealty/voucher-api/internal/application/service"
	"github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/abicrealty/voucher-api/internal/presentation/http/dto/request"
	"github.com/abicrealty/voucher-api/internal/presentation/http/dto/response"
	"github.com/abicrealty/voucher-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChequeVoucherHandler handles cheque voucher HTTP requests
type ChequeVoucherHandler struct {
	voucherService *service.ChequeVoucherService
}

// NewChequeVoucherHandler creates a new cheque voucher handler
func NewChequeVoucherHandler(voucherService *service.ChequeVoucherService) *ChequeVoucherHandler {
	return &ChequeVoucherHandler{voucherService: voucherService}
}

func (h *ChequeVoucherHandler) toInput(req *request.ChequeVoucherRequest) *service.ChequeVoucherInput {
	accountID, _ := uuid.Parse(req.AccountID)

	return &service.ChequeVoucherInput{
		AccountID:    accountID,
		AccountNo:    req.AccountNo,
		ChequeNumber: req.ChequeNumber,
		PaidTo:       req.PaidTo,
		PayTo:        req.PayTo,
		Date:         req.Date,
		ChequeDate:   req.ChequeDate,
		Amount:       req.Amount,
		Signature:    req.Signature,
		PrintedName:  req.PrintedName,
		ApprovedDate: req.ApprovedDate,
	}
}

// List handles listing cheque vouchers with filters
func (h *ChequeVoucherHandler) List(c *gin.Context) {
	var p pagination.PaginationParams
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ChequeVoucherFilterParams{
		Pagination: &p,
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
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

	response.SuccessWithPagination(c, 200, "Cheque vouchers retrieved successfully", result)
}

// Create handles creating a new cheque voucher
func (h *ChequeVoucherHandler) Create(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ChequeVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	voucher, err := h.voucherService.Create(c.Request.Context(), *actor, h.toInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cheque voucher created successfully", gin.H{"voucher": voucher})
}

// Get handles fetching a single cheque voucher
func (h *ChequeVoucherHandler) Get(c *gin.Context) {
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

	response.OK(c, "Cheque voucher retrieved successfully", gin.H{"voucher": voucher})
}

// Update handles updating a cheque voucher
func (h *ChequeVoucherHandler) Update(c *gin.Context) {
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

	var req request.ChequeVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	voucher, err := h.voucherService.Update(c.Request.Context(), *actor, id, h.toInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cheque voucher updated successfully", gin.H{"voucher": voucher})
}

// Delete handles deleting a cheque voucher
func (h *ChequeVoucherHandler) Delete(c *gin.Context) {
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

	response.OK(c, "Cheque voucher deleted successfully", nil)
}

// GenerateNumber handles fetching the next cheque number for an account
func (h *ChequeVoucherHandler) GenerateNumber(c *gin.Context) {
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

	response.OK(c, "Cheque number generated", gin.H{"cheque_number": number})
}

// Export handles rendering the cheque voucher as a downloadable JPEG
func (h *ChequeVoucherHandler) Export(c *gin.Context) {
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
