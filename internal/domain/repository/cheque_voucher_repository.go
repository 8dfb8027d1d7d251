package repository

import (
	"context"
	"time"

	"github.com/abicrealty/voucher-api/internal/domain/entity"
	"github.com/abicrealty/voucher-api/pkg/pagination"
	"github.com/google/uuid"
)

// ChequeVoucherFilterParams contains filtering parameters for cheque voucher queries
type ChequeVoucherFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	AccountID  *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// ChequeVoucherRepository defines the interface for cheque voucher data operations
type ChequeVoucherRepository interface {
	Create(ctx context.Context, voucher *entity.ChequeVoucher) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ChequeVoucher, error)
	Update(ctx context.Context, voucher *entity.ChequeVoucher) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ChequeVoucherFilterParams) ([]entity.ChequeVoucher, int64, error)
	ListAll(ctx context.Context) ([]entity.ChequeVoucher, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}
