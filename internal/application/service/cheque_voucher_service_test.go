package service

import (
	"context"
	"testing"

	"github.com/abicrealty/voucher-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChequeVoucherFixture() (*ChequeVoucherService, *mockChequeVoucherRepo, *mockAccountRepo) {
	voucherRepo := newMockChequeVoucherRepo()
	accountRepo := newMockAccountRepo()
	activity, _ := newTestActivityService()
	svc := NewChequeVoucherService(voucherRepo, accountRepo, activity, testExportConfig())
	return svc, voucherRepo, accountRepo
}

func validChequeInput(accountID uuid.UUID) *ChequeVoucherInput {
	return &ChequeVoucherInput{
		AccountID:    accountID,
		AccountNo:    "9988-7766",
		PaidTo:       "Acme",
		PayTo:        "Acme Supplies Inc",
		Date:         "2024-01-01",
		ChequeDate:   "2024-01-15",
		Amount:       "1234.5",
		PrintedName:  "J Doe",
		ApprovedDate: "2024-01-02",
	}
}

func TestChequeVoucherInputValidate(t *testing.T) {
	input := validChequeInput(uuid.New())
	input.ChequeNumber = "CHQ-100234-0001"
	assert.Empty(t, input.Validate())

	input.ChequeNumber = ""
	assert.Contains(t, input.Validate(), "Cheque number is required")

	input.ChequeNumber = "CHQ-100234-0001"
	input.Amount = "0"
	assert.Contains(t, input.Validate(), "Amount must be greater than zero")

	input.Amount = "1234.5"
	input.AccountNo = " "
	assert.Contains(t, input.Validate(), "Account number is required")
}

func TestChequeGenerateNumber(t *testing.T) {
	svc, voucherRepo, accountRepo := newChequeVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	ctx := context.Background()

	number, err := svc.GenerateNumber(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "CHQ-100234-0001", number)

	voucherRepo.reserved["CHQ-100234-0001"] = true

	number, err = svc.GenerateNumber(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "CHQ-100234-0002", number)
}

func TestCreateChequeVoucherGeneratesNumber(t *testing.T) {
	svc, _, accountRepo := newChequeVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")

	voucher, err := svc.Create(context.Background(), testActor(), validChequeInput(account.ID))
	require.NoError(t, err)

	assert.Equal(t, "CHQ-100234-0001", voucher.ChequeNumber)
	// The typed account number is stored untouched; the sequence only ever
	// reads the account's stored number
	assert.Equal(t, "9988-7766", voucher.AccountNo)
	assert.Equal(t, int64(123450), voucher.Amount)
}

func TestCreateChequeVoucherDuplicateNumber(t *testing.T) {
	svc, voucherRepo, accountRepo := newChequeVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	voucherRepo.reserved["CHQ-100234-0042"] = true

	input := validChequeInput(account.ID)
	input.ChequeNumber = "CHQ-100234-0042"

	_, err := svc.Create(context.Background(), testActor(), input)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateChequeVoucherKeepsNumber(t *testing.T) {
	svc, _, accountRepo := newChequeVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	ctx := context.Background()
	actor := testActor()

	voucher, err := svc.Create(ctx, actor, validChequeInput(account.ID))
	require.NoError(t, err)

	input := validChequeInput(account.ID)
	input.ChequeNumber = "CHQ-OTHER-0009"
	input.AccountNo = "1122-3344"

	updated, err := svc.Update(ctx, actor, voucher.ID, input)
	require.NoError(t, err)
	assert.Equal(t, voucher.ChequeNumber, updated.ChequeNumber)
	assert.Equal(t, "1122-3344", updated.AccountNo)
}

func TestExportChequeVoucher(t *testing.T) {
	svc, _, accountRepo := newChequeVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	ctx := context.Background()
	actor := testActor()

	voucher, err := svc.Create(ctx, actor, validChequeInput(account.ID))
	require.NoError(t, err)

	output, err := svc.Export(ctx, actor, voucher.ID)
	require.NoError(t, err)
	assert.Equal(t, "cheque-voucher-CHQ-100234-0001.jpg", output.Filename)
	assert.NotEmpty(t, output.JPEG)
}

func TestExportChequeVoucherRejectsIncomplete(t *testing.T) {
	svc, voucherRepo, accountRepo := newChequeVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	ctx := context.Background()
	actor := testActor()

	voucher, err := svc.Create(ctx, actor, validChequeInput(account.ID))
	require.NoError(t, err)

	stored := voucherRepo.vouchers[voucher.ID]
	stored.Amount = 0

	_, err = svc.Export(ctx, actor, voucher.ID)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestDeleteChequeVoucherKeepsNumberReserved(t *testing.T) {
	svc, _, accountRepo := newChequeVoucherFixture()
	account := accountRepo.add("Operating Fund", "100234")
	ctx := context.Background()
	actor := testActor()

	voucher, err := svc.Create(ctx, actor, validChequeInput(account.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, actor, voucher.ID))

	// The next generated number moves past the deleted one
	number, err := svc.GenerateNumber(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "CHQ-100234-0002", number)
}
