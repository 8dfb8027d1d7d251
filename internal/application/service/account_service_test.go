package service

import (
	"context"
	"testing"

	"github.com/abicrealty/voucher-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountFixture() (*AccountService, *mockAccountRepo) {
	accountRepo := newMockAccountRepo()
	activity, _ := newTestActivityService()
	return NewAccountService(accountRepo, activity), accountRepo
}

func TestCreateAccount(t *testing.T) {
	svc, _ := newAccountFixture()

	account, err := svc.Create(context.Background(), testActor(), &AccountInput{
		AccountName:   "Operating Fund",
		AccountNumber: "100234",
	})
	require.NoError(t, err)
	assert.Equal(t, "Operating Fund", account.AccountName)
	assert.Equal(t, "100234", account.AccountNumber)
}

func TestCreateAccountValidation(t *testing.T) {
	svc, _ := newAccountFixture()

	_, err := svc.Create(context.Background(), testActor(), &AccountInput{})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 2)
}

func TestCreateAccountDuplicateNumber(t *testing.T) {
	svc, accountRepo := newAccountFixture()
	accountRepo.add("Operating Fund", "100234")

	_, err := svc.Create(context.Background(), testActor(), &AccountInput{
		AccountName:   "Petty Cash",
		AccountNumber: "100234",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateAccount(t *testing.T) {
	svc, accountRepo := newAccountFixture()
	account := accountRepo.add("Operating Fund", "100234")

	updated, err := svc.Update(context.Background(), testActor(), account.ID, &AccountInput{
		AccountName:   "Operating Fund 2024",
		AccountNumber: "100234",
	})
	require.NoError(t, err)
	assert.Equal(t, "Operating Fund 2024", updated.AccountName)
}

func TestDeleteAccountBlockedByVouchers(t *testing.T) {
	svc, accountRepo := newAccountFixture()
	account := accountRepo.add("Operating Fund", "100234")
	accountRepo.voucherCount = 3

	err := svc.Delete(context.Background(), testActor(), account.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	accountRepo.voucherCount = 0
	require.NoError(t, svc.Delete(context.Background(), testActor(), account.ID))
}
