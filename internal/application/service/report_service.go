package service

import (
	"context"
	"sort"

	"github.com/abicrealty/voucher-api/internal/domain/enum"
	"github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/abicrealty/voucher-api/pkg/money"
)

// ReportService builds the voucher summary shown on the admin dashboard
type ReportService struct {
	cashRepo   repository.CashVoucherRepository
	chequeRepo repository.ChequeVoucherRepository
}

// NewReportService creates a new report service
func NewReportService(cashRepo repository.CashVoucherRepository, chequeRepo repository.ChequeVoucherRepository) *ReportService {
	return &ReportService{cashRepo: cashRepo, chequeRepo: chequeRepo}
}

// StatusCount is the per-status breakdown of cash vouchers
type StatusCount struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
}

// PayeeTotal is a payee with the amount disbursed to them
type PayeeTotal struct {
	PaidTo string  `json:"paid_to"`
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
}

// VoucherSummary aggregates both voucher kinds. Cancelled cash vouchers are
// counted but excluded from the disbursed totals.
type VoucherSummary struct {
	CashCount   int           `json:"cash_count"`
	ChequeCount int           `json:"cheque_count"`
	CashTotal   float64       `json:"cash_total"`
	ChequeTotal float64       `json:"cheque_total"`
	GrandTotal  float64       `json:"grand_total"`
	ByStatus    []StatusCount `json:"by_status"`
	TopPayees   []PayeeTotal  `json:"top_payees"`
}

const topPayeeLimit = 5

// Summary computes the aggregate voucher figures
func (s *ReportService) Summary(ctx context.Context) (*VoucherSummary, error) {
	cash, err := s.cashRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	cheques, err := s.chequeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &VoucherSummary{
		CashCount:   len(cash),
		ChequeCount: len(cheques),
	}

	statusCounts := make(map[enum.VoucherStatus]*StatusCount)
	payees := make(map[string]*PayeeTotal)

	for i := range cash {
		v := &cash[i]
		total := money.FromCentavos(v.Total())

		sc, ok := statusCounts[v.Status]
		if !ok {
			sc = &StatusCount{Status: v.Status.String()}
			statusCounts[v.Status] = sc
		}
		sc.Count++
		sc.Total += total

		if v.Status == enum.VoucherStatusCancelled {
			continue
		}
		summary.CashTotal += total
		addPayee(payees, v.PaidTo, total)
	}

	for i := range cheques {
		v := &cheques[i]
		total := money.FromCentavos(v.Amount)
		summary.ChequeTotal += total
		addPayee(payees, v.PaidTo, total)
	}

	summary.GrandTotal = summary.CashTotal + summary.ChequeTotal

	for _, status := range []enum.VoucherStatus{
		enum.VoucherStatusDraft,
		enum.VoucherStatusApproved,
		enum.VoucherStatusPaid,
		enum.VoucherStatusCancelled,
	} {
		if sc, ok := statusCounts[status]; ok {
			summary.ByStatus = append(summary.ByStatus, *sc)
		}
	}

	for _, p := range payees {
		summary.TopPayees = append(summary.TopPayees, *p)
	}
	sort.Slice(summary.TopPayees, func(i, j int) bool {
		if summary.TopPayees[i].Total != summary.TopPayees[j].Total {
			return summary.TopPayees[i].Total > summary.TopPayees[j].Total
		}
		return summary.TopPayees[i].PaidTo < summary.TopPayees[j].PaidTo
	})
	if len(summary.TopPayees) > topPayeeLimit {
		summary.TopPayees = summary.TopPayees[:topPayeeLimit]
	}

	return summary, nil
}

func addPayee(m map[string]*PayeeTotal, paidTo string, total float64) {
	p, ok := m[paidTo]
	if !ok {
		p = &PayeeTotal{PaidTo: paidTo}
		m[paidTo] = p
	}
	p.Count++
	p.Total += total
}
