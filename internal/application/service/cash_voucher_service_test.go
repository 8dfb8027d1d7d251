package service

import (
	"context"
	"testing"

	"github.com/abicrealty/voucher-api/internal/config"
	"github.com/abicrealty/voucher-api/internal/domain/enum"
	"github.com/abicrealty/voucher-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExportConfig() config.ExportConfig {
	return config.ExportConfig{
		CompanyName:    "ABIC Realty & Consultancy Corporation",
		CompanyAddress: "Makati City, Philippines",
	}
}

func newCashVoucherFixture() (*CashVoucherService, *mockCashVoucherRepo, *mockAccountRepo) {
	voucherRepo := newMockCashVoucherRepo()
	itemRepo := newMockCashVoucherItemRepo()
	accountRepo := newMockAccountRepo()
	activity, _ := newTestActivityService()
	svc := NewCashVoucherService(voucherRepo, itemRepo, accountRepo, activity, testExportConfig())
	return svc, voucherRepo, accountRepo
}

func validCashInput(accountID uuid.UUID) *CashVoucherInput {
	return &CashVoucherInput{
		AccountID:    accountID,
		PaidTo:       "Acme",
		Date:         "2024-01-01",
		Particulars:  "Rent",
		Amount:       "500",
		PrintedName:  "J Doe",
		ApprovedName: "A Boss",
		ApprovedDate: "2024-01-02",
	}
}

func TestCashVoucherInputValidateMinimalForm(t *testing.T) {
	input := validCashInput(uuid.New())
	assert.Empty(t, input.Validate())
}

func TestCashVoucherInputValidateRequiredFields(t *testing.T) {
	input := &CashVoucherInput{}
	errs := input.Validate()
	require.NotEmpty(t, errs)

	// Messages come back in form order
	assert.Equal(t, "Please select an account", errs[0])
	assert.Contains(t, errs, "Paid to is required")
	assert.Contains(t, errs, "Date is required")
	assert.Contains(t, errs, "Amount must be greater than zero")
	assert.Contains(t, errs, "Printed name is required")
	assert.Contains(t, errs, "Approved name is required")
	assert.Contains(t, errs, "Approved date is required")
}

func TestCashVoucherInputValidateAmount(t *testing.T) {
	input := validCashInput(uuid.New())

	input.Amount = "0"
	assert.Contains(t, input.Validate(), "Amount must be greater than zero")

	input.Amount = "-5"
	assert.Contains(t, input.Validate(), "Amount must be greater than zero")

	input.Amount = "not-a-number"
	assert.Contains(t, input.Validate(), "Amount must be greater than zero")

	// Whitespace-only text fields are rejected
	input.Amount = "500"
	input.PaidTo = "   "
	assert.Contains(t, input.Validate(), "Paid to is required")
}

func TestCashVoucherInputValidateItems(t *testing.T) {
	input := validCashInput(uuid.New())
	input.Amount = ""
	input.Particulars = ""
	input.Items = []CashVoucherItemInput{
		{Description: "", Amount: "100"},
		{Description: "Rent", Amount: "0"},
	}
	errs := input.Validate()
	assert.Contains(t, errs, "At least one particular needs a description and an amount greater than zero")

	// One well-formed row is enough
	input.Items = append(input.Items, CashVoucherItemInput{Description: "Utilities", Amount: "50"})
	assert.Empty(t, input.Validate())
}

func TestCashVoucherInputTotal(t *testing.T) {
	input := validCashInput(uuid.New())
	assert.Equal(t, 500.0, input.Total())

	input.Items = []CashVoucherItemInput{
		{Description: "A", Amount: "100.5"},
		{Description: "B", Amount: "200"},
	}
	assert.Equal(t, 300.5, input.Total())

	// Item order does not change the total
	input.Items[0], input.Items[1] = input.Items[1], input.Items[0]
	assert.Equal(t, 300.5, input.Total())

	// Empty list falls back to the flat amount; invalid parses to zero
	input.Items = nil
	input.Amount = ""
	assert.Equal(t, 0.0, input.Total())
}

func TestGenerateNumberSequence(t *testing.T) {
	svc, voucherRepo, accountRepo := newCashVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	ctx := context.Background()

	number, err := svc.GenerateNumber(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "CV-100234-0001", number)

	// Reserved numbers are skipped, including ones held by deleted vouchers
	voucherRepo.reserved["CV-100234-0001"] = true
	voucherRepo.reserved["CV-100234-0002"] = true

	number, err = svc.GenerateNumber(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "CV-100234-0003", number)
}

func TestGenerateNumberUnknownAccount(t *testing.T) {
	svc, _, _ := newCashVoucherFixture()

	_, err := svc.GenerateNumber(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateCashVoucher(t *testing.T) {
	svc, _, accountRepo := newCashVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	ctx := context.Background()

	voucher, err := svc.Create(ctx, testActor(), validCashInput(account.ID))
	require.NoError(t, err)
	require.NotNil(t, voucher)

	assert.Equal(t, "CV-100234-0001", voucher.VoucherNumber)
	assert.Equal(t, int64(50000), voucher.Amount)
	assert.Equal(t, enum.VoucherStatusDraft, voucher.Status)
}

func TestCreateCashVoucherRejectsInvalid(t *testing.T) {
	svc, _, accountRepo := newCashVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")

	input := validCashInput(account.ID)
	input.Amount = "0"

	_, err := svc.Create(context.Background(), testActor(), input)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestCreateCashVoucherDuplicateNumber(t *testing.T) {
	svc, voucherRepo, accountRepo := newCashVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	voucherRepo.reserved["CV-100234-0042"] = true

	input := validCashInput(account.ID)
	input.VoucherNumber = "CV-100234-0042"

	_, err := svc.Create(context.Background(), testActor(), input)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCashVoucherTransitions(t *testing.T) {
	svc, _, accountRepo := newCashVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	ctx := context.Background()
	actor := testActor()

	voucher, err := svc.Create(ctx, actor, validCashInput(account.ID))
	require.NoError(t, err)

	// Draft cannot be marked paid directly
	_, err = svc.MarkPaid(ctx, actor, voucher.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	approved, err := svc.Approve(ctx, actor, voucher.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VoucherStatusApproved, approved.Status)

	paid, err := svc.MarkPaid(ctx, actor, voucher.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.VoucherStatusPaid, paid.Status)

	// Paid is terminal
	_, err = svc.Cancel(ctx, actor, voucher.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateCashVoucherRejectsTerminal(t *testing.T) {
	svc, _, accountRepo := newCashVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	ctx := context.Background()
	actor := testActor()

	voucher, err := svc.Create(ctx, actor, validCashInput(account.ID))
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, actor, voucher.ID)
	require.NoError(t, err)

	_, err = svc.Update(ctx, actor, voucher.ID, validCashInput(account.ID))
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateCashVoucherKeepsNumber(t *testing.T) {
	svc, _, accountRepo := newCashVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	ctx := context.Background()
	actor := testActor()

	voucher, err := svc.Create(ctx, actor, validCashInput(account.ID))
	require.NoError(t, err)

	input := validCashInput(account.ID)
	input.PaidTo = "New Payee"
	input.VoucherNumber = "CV-HACKED-9999"

	updated, err := svc.Update(ctx, actor, voucher.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "New Payee", updated.PaidTo)
	assert.Equal(t, voucher.VoucherNumber, updated.VoucherNumber)
}

func TestExportCashVoucher(t *testing.T) {
	svc, _, accountRepo := newCashVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	ctx := context.Background()
	actor := testActor()

	voucher, err := svc.Create(ctx, actor, validCashInput(account.ID))
	require.NoError(t, err)

	output, err := svc.Export(ctx, actor, voucher.ID)
	require.NoError(t, err)
	assert.Equal(t, "cash-voucher-CV-100234-0001.jpg", output.Filename)
	assert.NotEmpty(t, output.JPEG)
}

func TestExportCashVoucherRejectsIncomplete(t *testing.T) {
	svc, voucherRepo, accountRepo := newCashVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	ctx := context.Background()
	actor := testActor()

	voucher, err := svc.Create(ctx, actor, validCashInput(account.ID))
	require.NoError(t, err)

	// Blank out a required field behind the service's back
	stored := voucherRepo.vouchers[voucher.ID]
	stored.PaidTo = ""

	_, err = svc.Export(ctx, actor, voucher.ID)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}
