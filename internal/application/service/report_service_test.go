package service

import (
	"context"
	"testing"

	"github.com/abicrealty/voucher-api/internal/domain/entity"
	"github.com/abicrealty/voucher-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoucherSummary(t *testing.T) {
	cashRepo := newMockCashVoucherRepo()
	chequeRepo := newMockChequeVoucherRepo()
	svc := NewReportService(cashRepo, chequeRepo)
	ctx := context.Background()

	require.NoError(t, cashRepo.Create(ctx, &entity.CashVoucher{
		ID: uuid.New(), VoucherNumber: "CV-1-0001", PaidTo: "Acme",
		Amount: 50000, Status: enum.VoucherStatusPaid,
	}))
	require.NoError(t, cashRepo.Create(ctx, &entity.CashVoucher{
		ID: uuid.New(), VoucherNumber: "CV-1-0002", PaidTo: "Acme",
		Amount: 25000, Status: enum.VoucherStatusDraft,
	}))
	require.NoError(t, cashRepo.Create(ctx, &entity.CashVoucher{
		ID: uuid.New(), VoucherNumber: "CV-1-0003", PaidTo: "Beta Corp",
		Amount: 100000, Status: enum.VoucherStatusCancelled,
	}))
	require.NoError(t, chequeRepo.Create(ctx, &entity.ChequeVoucher{
		ID: uuid.New(), ChequeNumber: "CHQ-1-0001", PaidTo: "Gamma",
		Amount: 123450,
	}))

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.CashCount)
	assert.Equal(t, 1, summary.ChequeCount)

	// Cancelled vouchers are excluded from the disbursed totals
	assert.InDelta(t, 750.0, summary.CashTotal, 1e-9)
	assert.InDelta(t, 1234.5, summary.ChequeTotal, 1e-9)
	assert.InDelta(t, 1984.5, summary.GrandTotal, 1e-9)

	statuses := make(map[string]StatusCount)
	for _, sc := range summary.ByStatus {
		statuses[sc.Status] = sc
	}
	assert.Equal(t, 1, statuses["paid"].Count)
	assert.Equal(t, 1, statuses["draft"].Count)
	assert.Equal(t, 1, statuses["cancelled"].Count)

	require.NotEmpty(t, summary.TopPayees)
	assert.Equal(t, "Gamma", summary.TopPayees[0].PaidTo)
	assert.InDelta(t, 1234.5, summary.TopPayees[0].Total, 1e-9)
}
