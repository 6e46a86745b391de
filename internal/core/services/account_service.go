package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/google/uuid"
)

const defaultListLimit = 50

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, opts ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBaseService(opts),
		accountRepo: repo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" || strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: account code and name are required", apperrors.ErrValidation)
	}
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}
	if !req.Currency.IsValid() {
		return nil, fmt.Errorf("%w: currency must be USD or PKR", apperrors.ErrValidation)
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        code,
		Name:        strings.TrimSpace(req.Name),
		AccountType: req.AccountType,
		Currency:    req.Currency,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, code)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("code", code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, asNamed(err, ErrAccountNotFound, accountID)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	limit, offset = normalizePage(limit, offset)
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
