package service

import (
	"context"

	"github.com/abicrealty/voucher-api/internal/domain/entity"
	"github.com/abicrealty/voucher-api/internal/domain/enum"
	"github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/google/uuid"
)

// In-memory repository fakes with error injection, shared by the service
// tests.

type mockAccountRepo struct {
	accounts     map[uuid.UUID]*entity.Account
	voucherCount int64
	getErr       error
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (m *mockAccountRepo) add(name, number string) *entity.Account {
	a := &entity.Account{ID: uuid.New(), AccountName: name, AccountNumber: number}
	m.accounts[a.ID] = a
	return a
}

func (m *mockAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	m.accounts[account.ID] = account
	return nil
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.accounts[id], nil
}

func (m *mockAccountRepo) GetByAccountNumber(ctx context.Context, accountNumber string) (*entity.Account, error) {
	for _, a := range m.accounts {
		if a.AccountNumber == accountNumber {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	m.accounts[account.ID] = account
	return nil
}

func (m *mockAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.accounts, id)
	return nil
}

func (m *mockAccountRepo) List(ctx context.Context, params *repository.AccountFilterParams) ([]entity.Account, int64, error) {
	var out []entity.Account
	for _, a := range m.accounts {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (m *mockAccountRepo) CountVouchers(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.voucherCount, nil
}

type mockCashVoucherRepo struct {
	vouchers  map[uuid.UUID]*entity.CashVoucher
	reserved  map[string]bool // numbers held, including deleted vouchers
	createErr error
	updateErr error
}

func newMockCashVoucherRepo() *mockCashVoucherRepo {
	return &mockCashVoucherRepo{
		vouchers: make(map[uuid.UUID]*entity.CashVoucher),
		reserved: make(map[string]bool),
	}
}

func (m *mockCashVoucherRepo) Create(ctx context.Context, v *entity.CashVoucher) error {
	if m.createErr != nil {
		return m.createErr
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	cp := *v
	m.vouchers[v.ID] = &cp
	m.reserved[v.VoucherNumber] = true
	return nil
}

func (m *mockCashVoucherRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashVoucher, error) {
	v, ok := m.vouchers[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (m *mockCashVoucherRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.CashVoucher, error) {
	return m.GetByID(ctx, id)
}

func (m *mockCashVoucherRepo) Update(ctx context.Context, v *entity.CashVoucher) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	cp := *v
	m.vouchers[v.ID] = &cp
	return nil
}

func (m *mockCashVoucherRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.VoucherStatus) error {
	v, ok := m.vouchers[id]
	if !ok {
		return nil
	}
	v.Status = status
	return nil
}

func (m *mockCashVoucherRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Soft delete keeps the number reserved
	delete(m.vouchers, id)
	return nil
}

func (m *mockCashVoucherRepo) List(ctx context.Context, params *repository.CashVoucherFilterParams) ([]entity.CashVoucher, int64, error) {
	var out []entity.CashVoucher
	for _, v := range m.vouchers {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (m *mockCashVoucherRepo) ListAll(ctx context.Context) ([]entity.CashVoucher, error) {
	var out []entity.CashVoucher
	for _, v := range m.vouchers {
		out = append(out, *v)
	}
	return out, nil
}

func (m *mockCashVoucherRepo) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	// Reserved numbers include deleted vouchers, matching the unscoped count
	return int64(len(m.reserved)), nil
}

func (m *mockCashVoucherRepo) NumberExists(ctx context.Context, number string) (bool, error) {
	return m.reserved[number], nil
}

type mockCashVoucherItemRepo struct {
	items map[uuid.UUID][]entity.CashVoucherItem
}

func newMockCashVoucherItemRepo() *mockCashVoucherItemRepo {
	return &mockCashVoucherItemRepo{items: make(map[uuid.UUID][]entity.CashVoucherItem)}
}

func (m *mockCashVoucherItemRepo) CreateBatch(ctx context.Context, items []entity.CashVoucherItem) error {
	if len(items) == 0 {
		return nil
	}
	voucherID := items[0].VoucherID
	m.items[voucherID] = append(m.items[voucherID], items...)
	return nil
}

func (m *mockCashVoucherItemRepo) DeleteByVoucherID(ctx context.Context, voucherID uuid.UUID) error {
	delete(m.items, voucherID)
	return nil
}

type mockChequeVoucherRepo struct {
	vouchers map[uuid.UUID]*entity.ChequeVoucher
	reserved map[string]bool
}

func newMockChequeVoucherRepo() *mockChequeVoucherRepo {
	return &mockChequeVoucherRepo{
		vouchers: make(map[uuid.UUID]*entity.ChequeVoucher),
		reserved: make(map[string]bool),
	}
}

func (m *mockChequeVoucherRepo) Create(ctx context.Context, v *entity.ChequeVoucher) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	cp := *v
	m.vouchers[v.ID] = &cp
	m.reserved[v.ChequeNumber] = true
	return nil
}

func (m *mockChequeVoucherRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ChequeVoucher, error) {
	v, ok := m.vouchers[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (m *mockChequeVoucherRepo) Update(ctx context.Context, v *entity.ChequeVoucher) error {
	cp := *v
	m.vouchers[v.ID] = &cp
	return nil
}

func (m *mockChequeVoucherRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.vouchers, id)
	return nil
}

func (m *mockChequeVoucherRepo) List(ctx context.Context, params *repository.ChequeVoucherFilterParams) ([]entity.ChequeVoucher, int64, error) {
	var out []entity.ChequeVoucher
	for _, v := range m.vouchers {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (m *mockChequeVoucherRepo) ListAll(ctx context.Context) ([]entity.ChequeVoucher, error) {
	var out []entity.ChequeVoucher
	for _, v := range m.vouchers {
		out = append(out, *v)
	}
	return out, nil
}

func (m *mockChequeVoucherRepo) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	return int64(len(m.reserved)), nil
}

func (m *mockChequeVoucherRepo) NumberExists(ctx context.Context, number string) (bool, error) {
	return m.reserved[number], nil
}

type mockActivityRepo struct {
	entries []entity.ActivityLog
}

func (m *mockActivityRepo) Create(ctx context.Context, log *entity.ActivityLog) error {
	m.entries = append(m.entries, *log)
	return nil
}

func (m *mockActivityRepo) List(ctx context.Context, params *repository.ActivityLogFilterParams) ([]entity.ActivityLog, int64, error) {
	return m.entries, int64(len(m.entries)), nil
}

func newTestActivityService() (*ActivityService, *mockActivityRepo) {
	repo := &mockActivityRepo{}
	return NewActivityService(repo), repo
}

func testActor() Actor {
	return Actor{ID: uuid.New(), Email: "clerk@abic.ph", Role: entity.RoleStaff}
}
