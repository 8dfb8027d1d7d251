package repository

import (
	"context"
	"errors"

	"github.com/abicrealty/voucher-api/internal/domain/entity"
	domainRepo "github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domainRepo.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (*entity.Account, error) {
	var account entity.Account
	err := r.db.WithContext(ctx).First(&account, "account_number = ?", accountNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Account{}, "id = ?", id).Error
}

func (r *accountRepository) List(ctx context.Context, params *domainRepo.AccountFilterParams) ([]entity.Account, int64, error) {
	var accounts []entity.Account
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Account{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("account_name ILIKE ? OR account_number ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortClause(params.SortBy, params.SortOrder, accountSortColumns)).
		Find(&accounts).Error

	return accounts, total, err
}

func (r *accountRepository) CountVouchers(ctx context.Context, id uuid.UUID) (int64, error) {
	var cash, cheque int64
	if err := r.db.WithContext(ctx).Model(&entity.CashVoucher{}).
		Where("account_id = ?", id).Count(&cash).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.ChequeVoucher{}).
		Where("account_id = ?", id).Count(&cheque).Error; err != nil {
		return 0, err
	}
	return cash + cheque, nil
}
