package repository

import (
	"context"
	"errors"

	"github.com/abicrealty/voucher-api/internal/domain/entity"
	"github.com/abicrealty/voucher-api/internal/domain/enum"
	domainRepo "github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type cashVoucherRepository struct {
	db *gorm.DB
}

// NewCashVoucherRepository creates a new cash voucher repository
func NewCashVoucherRepository(db *gorm.DB) domainRepo.CashVoucherRepository {
	return &cashVoucherRepository{db: db}
}

func (r *cashVoucherRepository) Create(ctx context.Context, voucher *entity.CashVoucher) error {
	return r.db.WithContext(ctx).Create(voucher).Error
}

func (r *cashVoucherRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashVoucher, error) {
	var voucher entity.CashVoucher
	err := r.db.WithContext(ctx).
		Preload("Account").
		First(&voucher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &voucher, err
}

func (r *cashVoucherRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.CashVoucher, error) {
	var voucher entity.CashVoucher
	err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&voucher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &voucher, err
}

func (r *cashVoucherRepository) Update(ctx context.Context, voucher *entity.CashVoucher) error {
	return r.db.WithContext(ctx).Omit("Items", "Account", "User").Save(voucher).Error
}

func (r *cashVoucherRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.VoucherStatus) error {
	return r.db.WithContext(ctx).Model(&entity.CashVoucher{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *cashVoucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CashVoucher{}, "id = ?", id).Error
}

func (r *cashVoucherRepository) List(ctx context.Context, params *domainRepo.CashVoucherFilterParams) ([]entity.CashVoucher, int64, error) {
	var vouchers []entity.CashVoucher
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CashVoucher{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("voucher_number ILIKE ? OR paid_to ILIKE ? OR particulars ILIKE ?",
			pattern, pattern, pattern)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
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
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order(sortClause(params.SortBy, params.SortOrder, cashVoucherSortColumns)).
		Find(&vouchers).Error

	return vouchers, total, err
}

func (r *cashVoucherRepository) ListAll(ctx context.Context) ([]entity.CashVoucher, error) {
	var vouchers []entity.CashVoucher
	err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Items").
		Order("created_at DESC").
		Find(&vouchers).Error
	return vouchers, err
}

func (r *cashVoucherRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.CashVoucher{}).
		Unscoped().
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}

func (r *cashVoucherRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.CashVoucher{}).
		Unscoped().
		Where("voucher_number = ?", number).
		Count(&count).Error
	return count > 0, err
}

type cashVoucherItemRepository struct {
	db *gorm.DB
}

// NewCashVoucherItemRepository creates a new particulars row repository
func NewCashVoucherItemRepository(db *gorm.DB) domainRepo.CashVoucherItemRepository {
	return &cashVoucherItemRepository{db: db}
}

func (r *cashVoucherItemRepository) CreateBatch(ctx context.Context, items []entity.CashVoucherItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *cashVoucherItemRepository) DeleteByVoucherID(ctx context.Context, voucherID uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().
		Delete(&entity.CashVoucherItem{}, "voucher_id = ?", voucherID).Error
}
