package repository

import (
	"context"
	"time"

	"github.com/abicrealty/voucher-api/internal/domain/entity"
	"github.com/abicrealty/voucher-api/internal/domain/enum"
	"github.com/abicrealty/voucher-api/pkg/pagination"
	"github.com/google/uuid"
)

// CashVoucherFilterParams contains filtering parameters for cash voucher queries
type CashVoucherFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.VoucherStatus
	AccountID  *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// CashVoucherRepository defines the interface for cash voucher data operations
type CashVoucherRepository interface {
	Create(ctx context.Context, voucher *entity.CashVoucher) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CashVoucher, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.CashVoucher, error)
	Update(ctx context.Context, voucher *entity.CashVoucher) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.VoucherStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CashVoucherFilterParams) ([]entity.CashVoucher, int64, error)
	ListAll(ctx context.Context) ([]entity.CashVoucher, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}

// CashVoucherItemRepository defines the interface for particulars row operations
type CashVoucherItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.CashVoucherItem) error
	DeleteByVoucherID(ctx context.Context, voucherID uuid.UUID) error
}
