package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/abicrealty/voucher-api/internal/config"
	"github.com/abicrealty/voucher-api/internal/domain/entity"
	"github.com/abicrealty/voucher-api/internal/domain/enum"
	"github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/abicrealty/voucher-api/pkg/apperror"
	"github.com/abicrealty/voucher-api/pkg/money"
	"github.com/abicrealty/voucher-api/pkg/pagination"
	"github.com/abicrealty/voucher-api/pkg/utils"
	"github.com/abicrealty/voucher-api/pkg/voucherimg"
	"github.com/google/uuid"
)

// CashVoucherService handles cash voucher creation, lifecycle and export
type CashVoucherService struct {
	voucherRepo repository.CashVoucherRepository
	itemRepo    repository.CashVoucherItemRepository
	accountRepo repository.AccountRepository
	activity    *ActivityService
	exportCfg   config.ExportConfig
}

// NewCashVoucherService creates a new cash voucher service
func NewCashVoucherService(
	voucherRepo repository.CashVoucherRepository,
	itemRepo repository.CashVoucherItemRepository,
	accountRepo repository.AccountRepository,
	activity *ActivityService,
	exportCfg config.ExportConfig,
) *CashVoucherService {
	return &CashVoucherService{
		voucherRepo: voucherRepo,
		itemRepo:    itemRepo,
		accountRepo: accountRepo,
		activity:    activity,
		exportCfg:   exportCfg,
	}
}

// CashVoucherItemInput is one particulars row as submitted, amount as a
// decimal string
type CashVoucherItemInput struct {
	Description string
	Amount      string
}

// CashVoucherInput represents a cash voucher form submission. Amounts arrive
// as decimal strings and are stored as centavos.
type CashVoucherInput struct {
	AccountID         uuid.UUID
	VoucherNumber     string // generated when blank
	PaidTo            string
	Date              string
	Particulars       string
	Amount            string
	Items             []CashVoucherItemInput
	Signature         *string
	PrintedName       string
	ApprovedSignature *string
	ApprovedName      string
	ApprovedDate      string
}

// Total computes the voucher total: the sum of line item amounts when any
// rows exist, otherwise the flat amount. Empty or invalid amounts parse to
// zero.
func (in *CashVoucherInput) Total() float64 {
	if len(in.Items) > 0 {
		amounts := make([]string, len(in.Items))
		for i, item := range in.Items {
			amounts[i] = item.Amount
		}
		return money.Sum(amounts)
	}
	return money.Parse(in.Amount)
}

// hasValidItem reports whether at least one row has both a description and a
// positive amount
func (in *CashVoucherInput) hasValidItem() bool {
	for _, item := range in.Items {
		if strings.TrimSpace(item.Description) != "" && money.Parse(item.Amount) > 0 {
			return true
		}
	}
	return false
}

// Validate runs the submit-time checks and returns the messages in form
// order. An empty slice means the voucher can be saved or exported.
func (in *CashVoucherInput) Validate() []string {
	var errs []string

	if in.AccountID == uuid.Nil {
		errs = append(errs, "Please select an account")
	}
	if strings.TrimSpace(in.PaidTo) == "" {
		errs = append(errs, "Paid to is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		errs = append(errs, "Date is required")
	} else if parseDate(in.Date).IsZero() {
		errs = append(errs, "Date is invalid")
	}

	if len(in.Items) > 0 {
		if !in.hasValidItem() {
			errs = append(errs, "At least one particular needs a description and an amount greater than zero")
		}
	} else {
		if strings.TrimSpace(in.Particulars) == "" {
			errs = append(errs, "Particulars is required")
		}
		if money.Parse(in.Amount) <= 0 {
			errs = append(errs, "Amount must be greater than zero")
		}
	}

	if strings.TrimSpace(in.PrintedName) == "" {
		errs = append(errs, "Printed name is required")
	}
	if strings.TrimSpace(in.ApprovedName) == "" {
		errs = append(errs, "Approved name is required")
	}
	if strings.TrimSpace(in.ApprovedDate) == "" {
		errs = append(errs, "Approved date is required")
	} else if parseDate(in.ApprovedDate).IsZero() {
		errs = append(errs, "Approved date is invalid")
	}

	return errs
}

// GenerateNumber returns the next free voucher number for the account. The
// sequence is scoped to the account's stored number and probes past numbers
// still held by soft-deleted vouchers.
func (s *CashVoucherService) GenerateNumber(ctx context.Context, accountID uuid.UUID) (string, error) {
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
		number := utils.FormatVoucherNumber(utils.CashVoucherPrefix, account.AccountNumber, seq)
		exists, err := s.voucherRepo.NumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
}

// Create validates and persists a new cash voucher with its particulars rows
func (s *CashVoucherService) Create(ctx context.Context, actor Actor, input *CashVoucherInput) (*entity.CashVoucher, error) {
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

	number := strings.TrimSpace(input.VoucherNumber)
	if number == "" {
		number, err = s.GenerateNumber(ctx, input.AccountID)
		if err != nil {
			return nil, err
		}
	} else {
		exists, err := s.voucherRepo.NumberExists(ctx, number)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperror.NewConflictError("Voucher number already in use")
		}
	}

	voucher := &entity.CashVoucher{
		UserID:            actor.ID,
		AccountID:         input.AccountID,
		VoucherNumber:     number,
		PaidTo:            strings.TrimSpace(input.PaidTo),
		Date:              parseDate(input.Date),
		Particulars:       strings.TrimSpace(input.Particulars),
		Amount:            money.ToCentavos(money.Parse(input.Amount)),
		Signature:         input.Signature,
		PrintedName:       strings.TrimSpace(input.PrintedName),
		ApprovedSignature: input.ApprovedSignature,
		ApprovedName:      strings.TrimSpace(input.ApprovedName),
		ApprovedDate:      parseDate(input.ApprovedDate),
		Status:            enum.VoucherStatusDraft,
	}

	if err := s.voucherRepo.Create(ctx, voucher); err != nil {
		return nil, err
	}

	if err := s.createItems(ctx, voucher.ID, input.Items); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, entity.ActionCreate, "cash_voucher", voucher.ID.String(),
		fmt.Sprintf("Created cash voucher %s for %s", voucher.VoucherNumber, voucher.PaidTo))

	return s.voucherRepo.GetWithItems(ctx, voucher.ID)
}

func (s *CashVoucherService) createItems(ctx context.Context, voucherID uuid.UUID, inputs []CashVoucherItemInput) error {
	items := make([]entity.CashVoucherItem, 0, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in.Description) == "" && money.Parse(in.Amount) == 0 {
			continue
		}
		items = append(items, entity.CashVoucherItem{
			VoucherID:   voucherID,
			Position:    i,
			Description: strings.TrimSpace(in.Description),
			Amount:      money.ToCentavos(money.Parse(in.Amount)),
		})
	}
	if len(items) == 0 {
		return nil
	}
	return s.itemRepo.CreateBatch(ctx, items)
}

// GetByID returns a cash voucher with its particulars rows
func (s *CashVoucherService) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashVoucher, error) {
	voucher, err := s.voucherRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher == nil {
		return nil, apperror.NewNotFoundError("Cash voucher")
	}
	return voucher, nil
}

// Update replaces a voucher's fields and particulars rows. Paid and
// cancelled vouchers are immutable; the stored voucher number is kept.
func (s *CashVoucherService) Update(ctx context.Context, actor Actor, id uuid.UUID, input *CashVoucherInput) (*entity.CashVoucher, error) {
	voucher, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if voucher.Status.IsTerminal() {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Voucher is %s and can no longer be edited", voucher.Status))
	}

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

	voucher.PaidTo = strings.TrimSpace(input.PaidTo)
	voucher.Date = parseDate(input.Date)
	voucher.Particulars = strings.TrimSpace(input.Particulars)
	voucher.Amount = money.ToCentavos(money.Parse(input.Amount))
	voucher.Signature = input.Signature
	voucher.PrintedName = strings.TrimSpace(input.PrintedName)
	voucher.ApprovedSignature = input.ApprovedSignature
	voucher.ApprovedName = strings.TrimSpace(input.ApprovedName)
	voucher.ApprovedDate = parseDate(input.ApprovedDate)

	if err := s.voucherRepo.Update(ctx, voucher); err != nil {
		return nil, err
	}

	if err := s.itemRepo.DeleteByVoucherID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.createItems(ctx, id, input.Items); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, entity.ActionUpdate, "cash_voucher", id.String(),
		fmt.Sprintf("Updated cash voucher %s", voucher.VoucherNumber))

	return s.voucherRepo.GetWithItems(ctx, id)
}

// transition moves a voucher to the next status, rejecting illegal moves
func (s *CashVoucherService) transition(ctx context.Context, actor Actor, id uuid.UUID, next enum.VoucherStatus, action string) (*entity.CashVoucher, error) {
	voucher, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !voucher.Status.CanTransitionTo(next) {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot move voucher from %s to %s", voucher.Status, next))
	}

	if err := s.voucherRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	voucher.Status = next

	s.activity.Record(ctx, actor, action, "cash_voucher", id.String(),
		fmt.Sprintf("Cash voucher %s is now %s", voucher.VoucherNumber, next))

	return voucher, nil
}

// Approve moves a draft voucher to approved
func (s *CashVoucherService) Approve(ctx context.Context, actor Actor, id uuid.UUID) (*entity.CashVoucher, error) {
	return s.transition(ctx, actor, id, enum.VoucherStatusApproved, entity.ActionApprove)
}

// MarkPaid moves an approved voucher to paid
func (s *CashVoucherService) MarkPaid(ctx context.Context, actor Actor, id uuid.UUID) (*entity.CashVoucher, error) {
	return s.transition(ctx, actor, id, enum.VoucherStatusPaid, entity.ActionMarkPaid)
}

// Cancel voids a draft or approved voucher
func (s *CashVoucherService) Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*entity.CashVoucher, error) {
	return s.transition(ctx, actor, id, enum.VoucherStatusCancelled, entity.ActionCancel)
}

// Delete removes a cash voucher and its rows. The number stays reserved so
// the sequence never reissues it.
func (s *CashVoucherService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	voucher, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.itemRepo.DeleteByVoucherID(ctx, id); err != nil {
		return err
	}
	if err := s.voucherRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, entity.ActionDelete, "cash_voucher", id.String(),
		fmt.Sprintf("Deleted cash voucher %s", voucher.VoucherNumber))

	return nil
}

// List returns cash vouchers filtered and paginated
func (s *CashVoucherService) List(ctx context.Context, params *repository.CashVoucherFilterParams) (*pagination.PaginatedResult[entity.CashVoucher], error) {
	vouchers, total, err := s.voucherRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(vouchers, pag), nil
}

// ExportOutput carries the rendered voucher image
type ExportOutput struct {
	Filename string
	JPEG     []byte
}

// Export renders the voucher as a JPEG. The stored voucher is revalidated as
// a form snapshot first so an incomplete record never produces an image.
func (s *CashVoucherService) Export(ctx context.Context, actor Actor, id uuid.UUID) (*ExportOutput, error) {
	voucher, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs := s.snapshotInput(voucher).Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	doc := s.buildDocument(voucher)
	jpeg, err := voucherimg.RenderJPEG(doc)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, entity.ActionExport, "cash_voucher", id.String(),
		fmt.Sprintf("Exported cash voucher %s", voucher.VoucherNumber))

	name := voucher.VoucherNumber
	if name == "" {
		name = "draft"
	}
	return &ExportOutput{
		Filename: fmt.Sprintf("cash-voucher-%s.jpg", name),
		JPEG:     jpeg,
	}, nil
}

// snapshotInput rebuilds the form input from a stored voucher so export runs
// the same checks as submit
func (s *CashVoucherService) snapshotInput(v *entity.CashVoucher) *CashVoucherInput {
	input := &CashVoucherInput{
		AccountID:     v.AccountID,
		VoucherNumber: v.VoucherNumber,
		PaidTo:        v.PaidTo,
		Date:          v.Date.Format(dateLayout),
		Particulars:   v.Particulars,
		Amount:        fmt.Sprintf("%.2f", money.FromCentavos(v.Amount)),
		PrintedName:   v.PrintedName,
		ApprovedName:  v.ApprovedName,
		ApprovedDate:  v.ApprovedDate.Format(dateLayout),
	}
	for _, item := range v.Items {
		input.Items = append(input.Items, CashVoucherItemInput{
			Description: item.Description,
			Amount:      fmt.Sprintf("%.2f", money.FromCentavos(item.Amount)),
		})
	}
	return input
}

func (s *CashVoucherService) buildDocument(v *entity.CashVoucher) voucherimg.Document {
	doc := voucherimg.Document{
		Kind:           "CASH VOUCHER",
		CompanyName:    s.exportCfg.CompanyName,
		CompanyAddress: s.exportCfg.CompanyAddress,
		LogoDataURL:    s.exportCfg.LogoDataURL,
		Number:         v.VoucherNumber,
		Fields: []voucherimg.Field{
			{Label: "Paid to", Value: v.PaidTo},
			{Label: "Date", Value: v.Date.Format(dateLayout)},
		},
		Total: money.FormatCentavos(v.Total()),
	}

	if len(v.Items) > 0 {
		for _, item := range v.Items {
			doc.Rows = append(doc.Rows, voucherimg.Row{
				Description: item.Description,
				Amount:      money.FormatCentavos(item.Amount),
			})
		}
	} else {
		doc.Rows = append(doc.Rows, voucherimg.Row{
			Description: v.Particulars,
			Amount:      money.FormatCentavos(v.Amount),
		})
	}

	received := voucherimg.SignatureBlock{
		Name:    v.PrintedName,
		Caption: "Received by",
		Date:    v.Date.Format(dateLayout),
	}
	if v.Signature != nil {
		received.ImageDataURL = *v.Signature
	}

	approved := voucherimg.SignatureBlock{
		Name:    v.ApprovedName,
		Caption: "Approved by",
		Date:    v.ApprovedDate.Format(dateLayout),
	}
	if v.ApprovedSignature != nil {
		approved.ImageDataURL = *v.ApprovedSignature
	}

	doc.Signatures = []voucherimg.SignatureBlock{received, approved}
	return doc
}
