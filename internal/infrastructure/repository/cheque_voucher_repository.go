package repository

import (
	"context"
	"errors"

	"github.com/abicrealty/voucher-api/internal/domain/entity"
	domainRepo "github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type chequeVoucherRepository struct {
	db *gorm.DB
}

// NewChequeVoucherRepository creates a new cheque voucher repository
func NewChequeVoucherRepository(db *gorm.DB) domainRepo.ChequeVoucherRepository {
	return &chequeVoucherRepository{db: db}
}

func (r *chequeVoucherRepository) Create(ctx context.Context, voucher *entity.ChequeVoucher) error {
	return r.db.WithContext(ctx).Create(voucher).Error
}

func (r *chequeVoucherRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ChequeVoucher, error) {
	var voucher entity.ChequeVoucher
	err := r.db.WithContext(ctx).
		Preload("Account").
		First(&voucher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &voucher, err
}

func (r *chequeVoucherRepository) Update(ctx context.Context, voucher *entity.ChequeVoucher) error {
	return r.db.WithContext(ctx).Omit("Account", "User").Save(voucher).Error
}

func (r *chequeVoucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ChequeVoucher{}, "id = ?", id).Error
}

func (r *chequeVoucherRepository) List(ctx context.Context, params *domainRepo.ChequeVoucherFilterParams) ([]entity.ChequeVoucher, int64, error) {
	var vouchers []entity.ChequeVoucher
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ChequeVoucher{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("cheque_number ILIKE ? OR paid_to ILIKE ? OR pay_to ILIKE ? OR account_no ILIKE ?",
			pattern, pattern, pattern, pattern)
	}

	if params.AccountID != nil {
		query = query.Where("account_id = ?", *params.AccountID)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Account").
		Order(sortClause(params.SortBy, params.SortOrder, chequeVoucherSortColumns)).
		Find(&vouchers).Error

	return vouchers, total, err
}

func (r *chequeVoucherRepository) ListAll(ctx context.Context) ([]entity.ChequeVoucher, error) {
	var vouchers []entity.ChequeVoucher
	err := r.db.WithContext(ctx).
		Preload("Account").
		Order("created_at DESC").
		Find(&vouchers).Error
	return vouchers, err
}

func (r *chequeVoucherRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ChequeVoucher{}).
		Unscoped().
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}

func (r *chequeVoucherRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ChequeVoucher{}).
		Unscoped().
		Where("cheque_number = ?", number).
		Count(&count).Error
	return count > 0, err
}
