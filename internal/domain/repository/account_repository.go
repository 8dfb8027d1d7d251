package repository

import (
	"context"

	"github.com/abicrealty/voucher-api/internal/domain/entity"
	"github.com/abicrealty/voucher-api/pkg/pagination"
	"github.com/google/uuid"
)

// AccountFilterParams contains filtering parameters for account queries
type AccountFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
}

// AccountRepository defines the interface for account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *AccountFilterParams) ([]entity.Account, int64, error)
	CountVouchers(ctx context.Context, id uuid.UUID) (int64, error)
}
