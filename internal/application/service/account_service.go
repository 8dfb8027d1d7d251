package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/abicrealty/voucher-api/internal/domain/entity"
	"github.com/abicrealty/voucher-api/internal/domain/repository"
	"github.com/abicrealty/voucher-api/pkg/apperror"
	"github.com/abicrealty/voucher-api/pkg/pagination"
	"github.com/google/uuid"
)

// AccountService handles disbursement account management
type AccountService struct {
	accountRepo repository.AccountRepository
	activity    *ActivityService
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repository.AccountRepository, activity *ActivityService) *AccountService {
	return &AccountService{accountRepo: accountRepo, activity: activity}
}

// AccountInput represents the account create/update input
type AccountInput struct {
	AccountName   string
	AccountNumber string
	AccountType   *string
	Balance       *float64
}

// Validate checks the account input and returns the validation messages in
// the order the form shows them
func (in *AccountInput) Validate() []string {
	var errs []string
	if strings.TrimSpace(in.AccountName) == "" {
		errs = append(errs, "Account name is required")
	}
	if strings.TrimSpace(in.AccountNumber) == "" {
		errs = append(errs, "Account number is required")
	}
	return errs
}

// Create creates a new disbursement account
func (s *AccountService) Create(ctx context.Context, actor Actor, input *AccountInput) (*entity.Account, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, err := s.accountRepo.GetByAccountNumber(ctx, input.AccountNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Account number already exists")
	}

	account := &entity.Account{
		UserID:        actor.ID,
		AccountName:   strings.TrimSpace(input.AccountName),
		AccountNumber: strings.TrimSpace(input.AccountNumber),
		AccountType:   input.AccountType,
		Balance:       input.Balance,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, entity.ActionCreate, "account", account.ID.String(),
		fmt.Sprintf("Created account %s (%s)", account.AccountName, account.AccountNumber))

	return account, nil
}

// GetByID returns an account by ID
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}
	return account, nil
}

// Update updates an existing account. Changing the account number does not
// renumber vouchers already issued against the old number.
func (s *AccountService) Update(ctx context.Context, actor Actor, id uuid.UUID, input *AccountInput) (*entity.Account, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	account, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(input.AccountNumber)
	if number != account.AccountNumber {
		existing, err := s.accountRepo.GetByAccountNumber(ctx, number)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Account number already exists")
		}
	}

	account.AccountName = strings.TrimSpace(input.AccountName)
	account.AccountNumber = number
	account.AccountType = input.AccountType
	account.Balance = input.Balance

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, actor, entity.ActionUpdate, "account", account.ID.String(),
		fmt.Sprintf("Updated account %s (%s)", account.AccountName, account.AccountNumber))

	return account, nil
}

// Delete removes an account. Accounts with vouchers issued against them
// cannot be deleted.
func (s *AccountService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	account, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.accountRepo.CountVouchers(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewConflictError("Account has vouchers and cannot be deleted")
	}

	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, actor, entity.ActionDelete, "account", id.String(),
		fmt.Sprintf("Deleted account %s (%s)", account.AccountName, account.AccountNumber))

	return nil
}

// List returns accounts filtered and paginated
func (s *AccountService) List(ctx context.Context, params *repository.AccountFilterParams) (*pagination.PaginatedResult[entity.Account], error) {
	accounts, total, err := s.accountRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(accounts, pag), nil
}
