package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/abicrealty/voucher-api/internal/config"
	"github.com/abicrealty/voucher-api/internal/domain/entity"
	"github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/abicrealty/voucher-api/pkg/apperror"
	"github.com/abicrealty/voucher-api/pkg/money"
	"github.com/abicrealty/voucher-api/pkg/pagination"
	"github.com/abicrealty/voucher-api/pkg/utils"
	"github.com/abicrealty/voucher-api/pkg/voucherimg"
	"github.com/google/uuid"
)

// ChequeVoucherService handles cheque voucher creation and export
type ChequeVoucherService struct {
	voucherRepo repository.ChequeVoucherRepository
	accountRepo repository.AccountRepository
	activity    *ActivityService
	exportCfg   config.ExportConfig
}

// NewChequeVoucherService creates a new cheque voucher service
func NewChequeVoucherService(
	voucherRepo repository.ChequeVoucherRepository,
	accountRepo repository.AccountRepository,
	activity *ActivityService,
	exportCfg config.ExportConfig,
) *ChequeVoucherService {
	return &ChequeVoucherService{
		voucherRepo: voucherRepo,
		accountRepo: accountRepo,
		activity:    activity,
		exportCfg:   exportCfg,
	}
}

// ChequeVoucherInput represents a cheque voucher form submission. AccountNo
// is what the clerk typed on the form; ChequeNumber is the sequenced document
// number and the two are independent.
type ChequeVoucherInput struct {
	AccountID    uuid.UUID
	AccountNo    string
	ChequeNumber string
	PaidTo       string
	PayTo        string
	Date         string
	ChequeDate   string
	Amount       string
	Signature    *string
	PrintedName  string
	ApprovedDate string
}

// Validate runs the submit-time checks and returns the messages in form order
func (in *ChequeVoucherInput) Validate() []string {
	var errs []string

	if in.AccountID == uuid.Nil {
		errs = append(errs, "Please select an account")
	}
	if strings.TrimSpace(in.AccountNo) == "" {
		errs = append(errs, "Account number is required")
	}
	if strings.TrimSpace(in.ChequeNumber) == "" {
		errs = append(errs, "Cheque number is required")
	}
	if strings.TrimSpace(in.PaidTo) == "" {
		errs = append(errs, "Paid to is required")
	}
	if strings.TrimSpace(in.PayTo) == "" {
		errs = append(errs, "Pay to is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		errs = append(errs, "Date is required")
	} else if parseDate(in.Date).IsZero() {
		errs = append(errs, "Date is invalid")
	}
	if strings.TrimSpace(in.ChequeDate) == "" {
		errs = append(errs, "Cheque date is required")
	} else if parseDate(in.ChequeDate).IsZero() {
		errs = append(errs, "Cheque date is invalid")
	}
	if money.Parse(in.Amount) <= 0 {
		errs = append(errs, "Amount must be greater than zero")
	}
	if strings.TrimSpace(in.PrintedName) == "" {
		errs = append(errs, "Printed name is required")
	}
	if strings.TrimSpace(in.ApprovedDate) == "" {
		errs = append(errs, "Approved date is required")
	} else if parseDate(in.ApprovedDate).IsZero() {
		errs = append(errs, "Approved date is invalid")
	}

	return errs
}

// GenerateNumber returns the next free cheque number for the account. The
// sequence follows the account's stored number and never touches the typed
// account_no field.
func (s *ChequeVoucherService) GenerateNumber(ctx context.Context, accountID uuid.UUID) (string, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", apperror.NewNotFoundError("Account")
	}

	count, err := s.voucherRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return "", err
	}

	for seq := count + 1; ; seq++ {
		number := utils.FormatVoucherNumber(utils.ChequeVoucherPrefix, account.AccountNumber, seq)
		exists, err := s.voucherRepo.NumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
}

// Create validates and persists a new cheque voucher
func (s *ChequeVoucherService) Create(ctx context.Context, actor Actor, input *ChequeVoucherInput) (*entity.ChequeVoucher, error) {
	if strings.TrimSpace(input.ChequeNumber) == "" {
		number, err := s.GenerateNumber(ctx, input.AccountID)
		if err != nil {
			return nil, err
		}
		input.ChequeNumber = number
	}

	if errs := input.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	account, err := s.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}

	exists, err := s.voucherRepo.NumberExists(ctx, input.ChequeNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflictError("Cheque number already in use")
	}

	voucher := &entity.ChequeVoucher{
		UserID:       actor.ID,
		AccountID:    input.AccountID,
		AccountNo:    strings.TrimSpace(input.AccountNo),
		ChequeNumber: strings.TrimSpace(input.ChequeNumber),
		PaidTo:       strings.TrimSpace(input.PaidTo),
		PayTo:        strings.TrimSpace(input.PayTo),
		Date:         parseDate(input.Date),
		ChequeDate:   parseDate(input.ChequeDate),
		Amount:       money.ToCentavos(money.Parse(input.Amount)),
		Signature:    input.Signature,
		PrintedName:  strings.TrimSpace(input.PrintedName),
		ApprovedDate: parseDate(input.ApprovedDate),
	}

	if err := s.voucherRepo.Create(ctx, voucher); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, entity.ActionCreate, "cheque_voucher", voucher.ID.String(),
		fmt.Sprintf("Created cheque voucher %s for %s", voucher.ChequeNumber, voucher.PaidTo))

	return voucher, nil
}

// GetByID returns a cheque voucher by ID
func (s *ChequeVoucherService) GetByID(ctx context.Context, id uuid.UUID) (*entity.ChequeVoucher, error) {
	voucher, err := s.voucherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Cheque voucher")
	}
	return voucher, nil
}

// Update replaces a cheque voucher's fields. The stored cheque number is
// kept; the typed account_no may be edited freely.
func (s *ChequeVoucherService) Update(ctx context.Context, actor Actor, id uuid.UUID, input *ChequeVoucherInput) (*entity.ChequeVoucher, error) {
	voucher, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.ChequeNumber = voucher.ChequeNumber
	if errs := input.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if input.AccountID != voucher.AccountID {
		account, err := s.accountRepo.GetByID(ctx, input.AccountID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, apperror.NewNotFoundError("Account")
		}
		voucher.AccountID = input.AccountID
	}

	voucher.AccountNo = strings.TrimSpace(input.AccountNo)
	voucher.PaidTo = strings.TrimSpace(input.PaidTo)
	voucher.PayTo = strings.TrimSpace(input.PayTo)
	voucher.Date = parseDate(input.Date)
	voucher.ChequeDate = parseDate(input.ChequeDate)
	voucher.Amount = money.ToCentavos(money.Parse(input.Amount))
	voucher.Signature = input.Signature
	voucher.PrintedName = strings.TrimSpace(input.PrintedName)
	voucher.ApprovedDate = parseDate(input.ApprovedDate)

	if err := s.voucherRepo.Update(ctx, voucher); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, entity.ActionUpdate, "cheque_voucher", id.String(),
		fmt.Sprintf("Updated cheque voucher %s", voucher.ChequeNumber))

	return voucher, nil
}

// Delete removes a cheque voucher. The number stays reserved so the sequence
// never reissues it.
func (s *ChequeVoucherService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	voucher, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.voucherRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, entity.ActionDelete, "cheque_voucher", id.String(),
		fmt.Sprintf("Deleted cheque voucher %s", voucher.ChequeNumber))

	return nil
}

// List returns cheque vouchers filtered and paginated
func (s *ChequeVoucherService) List(ctx context.Context, params *repository.ChequeVoucherFilterParams) (*pagination.PaginatedResult[entity.ChequeVoucher], error) {
	vouchers, total, err := s.voucherRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(vouchers, pag), nil
}

// Export renders the cheque voucher as a JPEG after revalidating the stored
// record as a form snapshot
func (s *ChequeVoucherService) Export(ctx context.Context, actor Actor, id uuid.UUID) (*ExportOutput, error) {
	voucher, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &ChequeVoucherInput{
		AccountID:    voucher.AccountID,
		AccountNo:    voucher.AccountNo,
		ChequeNumber: voucher.ChequeNumber,
		PaidTo:       voucher.PaidTo,
		PayTo:        voucher.PayTo,
		Date:         voucher.Date.Format(dateLayout),
		ChequeDate:   voucher.ChequeDate.Format(dateLayout),
		Amount:       fmt.Sprintf("%.2f", money.FromCentavos(voucher.Amount)),
		PrintedName:  voucher.PrintedName,
		ApprovedDate: voucher.ApprovedDate.Format(dateLayout),
	}
	if errs := snapshot.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	jpeg, err := voucherimg.RenderJPEG(s.buildDocument(voucher))
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, entity.ActionExport, "cheque_voucher", id.String(),
		fmt.Sprintf("Exported cheque voucher %s", voucher.ChequeNumber))

	return &ExportOutput{
		Filename: fmt.Sprintf("cheque-voucher-%s.jpg", voucher.ChequeNumber),
		JPEG:     jpeg,
	}, nil
}

func (s *ChequeVoucherService) buildDocument(v *entity.ChequeVoucher) voucherimg.Document {
	signed := voucherimg.SignatureBlock{
		Name:    v.PrintedName,
		Caption: "Received by",
		Date:    v.ApprovedDate.Format(dateLayout),
	}
	if v.Signature != nil {
		signed.ImageDataURL = *v.Signature
	}

	return voucherimg.Document{
		Kind:           "CHEQUE VOUCHER",
		CompanyName:    s.exportCfg.CompanyName,
		CompanyAddress: s.exportCfg.CompanyAddress,
		LogoDataURL:    s.exportCfg.LogoDataURL,
		Number:         v.ChequeNumber,
		Fields: []voucherimg.Field{
			{Label: "Account No", Value: v.AccountNo},
			{Label: "Paid to", Value: v.PaidTo},
			{Label: "Pay to", Value: v.PayTo},
			{Label: "Date", Value: v.Date.Format(dateLayout)},
			{Label: "Cheque date", Value: v.ChequeDate.Format(dateLayout)},
		},
		Rows: []voucherimg.Row{
			{Description: "Cheque payment", Amount: money.FormatCentavos(v.Amount)},
		},
		Total:      money.FormatCentavos(v.Amount),
		Signatures: []voucherimg.SignatureBlock{signed},
	}
}
