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
	"github.com/appdotbuilder/finops-audit-app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultJournalPageSize = 20

// journalService owns draft journals, their lines and the DRAFT to POSTED transition.
type journalService struct {
	BaseService
	txm          portsrepo.TransactionManager
	journalRepo  portsrepo.JournalRepositoryFacade
	periodRepo   portsrepo.PeriodReader
	accountRepo  portsrepo.AccountReader
	partnerRepo  portsrepo.PartnerRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
	userRepo     portsrepo.UserReader
	fxRates      portssvc.FxRateReaderSvc
}

// NewJournalService creates a new journal service.
func NewJournalService(
	txm portsrepo.TransactionManager,
	journalRepo portsrepo.JournalRepositoryFacade,
	periodRepo portsrepo.PeriodReader,
	accountRepo portsrepo.AccountReader,
	partnerRepo portsrepo.PartnerRepositoryFacade,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	userRepo portsrepo.UserReader,
	fxRates portssvc.FxRateReaderSvc,
	opts ...ServiceOption,
) portssvc.JournalSvcFacade {
	return &journalService{
		BaseService:  newBaseService(opts),
		txm:          txm,
		journalRepo:  journalRepo,
		periodRepo:   periodRepo,
		accountRepo:  accountRepo,
		partnerRepo:  partnerRepo,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		fxRates:      fxRates,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", apperrors.ErrValidation)
	}
	txDate, err := dto.ParseDate(req.TransactionDate)
	if err != nil {
		return nil, err
	}

	journal := domain.Journal{
		JournalID:       uuid.NewString(),
		Reference:       reference,
		Description:     req.Description,
		TransactionDate: txDate,
		PeriodID:        req.PeriodID,
		Status:          domain.Draft,
		AuditFields:     domain.NewAuditFields(creatorUserID, s.Now()),
	}

	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		period, err := s.periodRepo.FindPeriodByIDForShare(ctx, req.PeriodID)
		if err != nil {
			return asNamed(err, ErrPeriodNotFound, req.PeriodID)
		}
		if period.IsLocked() {
			return fmt.Errorf("%w: %s", ErrPeriodLocked, period.Label())
		}
		if _, err := s.userRepo.FindUserByID(ctx, creatorUserID); err != nil {
			return asNamed(err, ErrUserNotFound, creatorUserID)
		}
		return s.journalRepo.SaveJournal(ctx, journal)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create journal", slog.String("period_id", req.PeriodID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal created", slog.String("journal_id", journal.JournalID), slog.String("reference", reference))
	return &journal, nil
}

func (s *journalService) AddLine(ctx context.Context, journalID string, req dto.AddJournalLineRequest, userID string) (*domain.JournalLine, error) {
	if err := validateLineAmounts(req); err != nil {
		return nil, err
	}

	var line domain.JournalLine
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		journal, err := s.loadDraftForUpdate(ctx, journalID)
		if err != nil {
			return err
		}
		if err := s.ensurePeriodOpen(ctx, journal.PeriodID); err != nil {
			return err
		}

		account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
		if err != nil {
			return asNamed(err, ErrAccountNotFound, req.AccountID)
		}
		if req.PartnerID != nil {
			if _, err := s.partnerRepo.FindPartnerByID(ctx, *req.PartnerID); err != nil {
				return asNamed(err, ErrPartnerNotFound, *req.PartnerID)
			}
		}
		if req.EmployeeID != nil {
			if _, err := s.employeeRepo.FindEmployeeByID(ctx, *req.EmployeeID); err != nil {
				return asNamed(err, ErrEmployeeNotFound, *req.EmployeeID)
			}
		}

		debitBase, creditBase, rate, err := s.resolveBaseAmounts(ctx, journal, account, req)
		if err != nil {
			return err
		}

		lineNumber, err := s.journalRepo.NextLineNumber(ctx, journalID)
		if err != nil {
			return err
		}

		line = domain.JournalLine{
			LineID:           uuid.NewString(),
			JournalID:        journalID,
			LineNumber:       lineNumber,
			AccountID:        req.AccountID,
			Description:      req.Description,
			DebitAmount:      req.DebitAmount,
			CreditAmount:     req.CreditAmount,
			DebitAmountBase:  debitBase,
			CreditAmountBase: creditBase,
			FxRate:           rate,
			PartnerID:        req.PartnerID,
			EmployeeID:       req.EmployeeID,
			CreatedAt:        s.Now(),
		}
		return s.journalRepo.SaveJournalLine(ctx, line)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to add journal line", slog.String("journal_id", journalID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal line added",
		slog.String("journal_id", journalID),
		slog.String("line_id", line.LineID),
		slog.Int("line_number", line.LineNumber),
		slog.String("user_id", userID))
	return &line, nil
}

func validateLineAmounts(req dto.AddJournalLineRequest) error {
	amounts := map[string]*decimal.Decimal{
		"debit amount":       &req.DebitAmount,
		"credit amount":      &req.CreditAmount,
		"debit amount base":  req.DebitAmountBase,
		"credit amount base": req.CreditAmountBase,
	}
	for name, amount := range amounts {
		if amount == nil {
			continue
		}
		if amount.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, name)
		}
		if !accounting.FitsScale(*amount, accounting.AmountPlaces) {
			return fmt.Errorf("%w: %s must have at most %d decimal places", apperrors.ErrValidation, name, accounting.AmountPlaces)
		}
	}
	if req.FxRate != nil && !req.FxRate.IsPositive() {
		return fmt.Errorf("%w: fx rate must be greater than zero", apperrors.ErrValidation)
	}
	if req.FxRate != nil && !accounting.FitsScale(*req.FxRate, accounting.RatePlaces) {
		return fmt.Errorf("%w: fx rate must have at most %d decimal places", apperrors.ErrValidation, accounting.RatePlaces)
	}
	return nil
}

// resolveBaseAmounts fills in base-currency amounts the caller left out.
// Explicit base amounts win; base-currency accounts convert one to one;
// other accounts use the given rate or the rate of the journal date.
func (s *journalService) resolveBaseAmounts(ctx context.Context, journal *domain.Journal, account *domain.Account, req dto.AddJournalLineRequest) (decimal.Decimal, decimal.Decimal, *decimal.Decimal, error) {
	if req.DebitAmountBase != nil || req.CreditAmountBase != nil {
		debitBase, creditBase := decimal.Zero, decimal.Zero
		if req.DebitAmountBase != nil {
			debitBase = *req.DebitAmountBase
		}
		if req.CreditAmountBase != nil {
			creditBase = *req.CreditAmountBase
		}
		return debitBase, creditBase, req.FxRate, nil
	}

	if account.Currency == domain.BaseCurrency {
		return req.DebitAmount, req.CreditAmount, nil, nil
	}

	rate := req.FxRate
	if rate == nil {
		fx, err := s.fxRates.GetRate(ctx, journal.TransactionDate)
		if err != nil {
			if errors.Is(err, ErrFxRateNotFound) {
				return decimal.Zero, decimal.Zero, nil, fmt.Errorf("%w: %s", ErrNoFxRate, dto.FormatDate(journal.TransactionDate))
			}
			return decimal.Zero, decimal.Zero, nil, err
		}
		rate = &fx.USDToPKR
	}

	return accounting.ConvertToBase(req.DebitAmount, *rate), accounting.ConvertToBase(req.CreditAmount, *rate), rate, nil
}

func (s *journalService) DeleteLine(ctx context.Context, lineID string, userID string) error {
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		line, err := s.journalRepo.FindJournalLineByID(ctx, lineID)
		if err != nil {
			return asNamed(err, ErrLineNotFound, lineID)
		}
		if _, err := s.loadDraftForUpdate(ctx, line.JournalID); err != nil {
			return err
		}
		return s.journalRepo.DeleteJournalLine(ctx, lineID)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete journal line", slog.String("line_id", lineID))
		return err
	}

	s.LogInfo(ctx, "Journal line deleted", slog.String("line_id", lineID), slog.String("user_id", userID))
	return nil
}

func (s *journalService) ValidateJournal(ctx context.Context, journalID string) (*domain.ValidationResult, error) {
	if _, err := s.journalRepo.FindJournalByID(ctx, journalID); err != nil {
		return nil, asNamed(err, ErrJournalNotFound, journalID)
	}
	lines, err := s.journalRepo.FindJournalLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	result := accounting.ValidateJournalLines(lines)
	return &result, nil
}

func (s *journalService) PostJournal(ctx context.Context, journalID string, userID string) (*domain.Journal, error) {
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		// The row lock makes concurrent posts of the same journal serialize here.
		journal, err := s.journalRepo.FindJournalByIDForUpdate(ctx, journalID)
		if err != nil {
			return asNamed(err, ErrJournalNotFound, journalID)
		}
		if journal.IsPosted() {
			return fmt.Errorf("%w: %s", ErrJournalAlreadyPosted, journalID)
		}
		if err := s.ensurePeriodOpen(ctx, journal.PeriodID); err != nil {
			return err
		}

		lines, err := s.journalRepo.FindJournalLinesByJournalID(ctx, journalID)
		if err != nil {
			return err
		}
		if result := accounting.ValidateJournalLines(lines); !result.IsValid {
			return apperrors.WithDetails(ErrJournalValidationFailed, result.Errors...)
		}

		if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
			return asNamed(err, ErrUserNotFound, userID)
		}
		return s.journalRepo.MarkJournalPosted(ctx, journalID, userID, s.Now())
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to post journal", slog.String("journal_id", journalID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal posted", slog.String("journal_id", journalID), slog.String("posted_by", userID))
	return s.GetJournalByID(ctx, journalID)
}

func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, asNamed(err, ErrJournalNotFound, journalID)
	}
	lines, err := s.journalRepo.FindJournalLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	journal.Lines = lines
	return journal, nil
}

func (s *journalService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	filter := portsrepo.JournalFilter{Limit: params.Limit}
	if filter.Limit <= 0 {
		filter.Limit = defaultJournalPageSize
	}
	if params.PeriodID != "" {
		filter.PeriodID = &params.PeriodID
	}
	if params.Status != "" {
		status := domain.JournalStatus(params.Status)
		if status != domain.Draft && status != domain.Posted {
			return nil, fmt.Errorf("%w: unknown journal status %q", apperrors.ErrValidation, params.Status)
		}
		filter.Status = &status
	}
	var err error
	if filter.FromDate, err = dto.ParseOptionalDate(params.FromDate); err != nil {
		return nil, err
	}
	if filter.ToDate, err = dto.ParseOptionalDate(params.ToDate); err != nil {
		return nil, err
	}
	if params.NextToken != "" {
		filter.NextToken = &params.NextToken
	}

	journals, nextToken, err := s.journalRepo.ListJournals(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := dto.ToListJournalsResponse(journals, nextToken)
	return &resp, nil
}

// loadDraftForUpdate locks a journal row and rejects posted journals.
func (s *journalService) loadDraftForUpdate(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByIDForUpdate(ctx, journalID)
	if err != nil {
		return nil, asNamed(err, ErrJournalNotFound, journalID)
	}
	if journal.IsPosted() {
		return nil, fmt.Errorf("%w: %s", ErrJournalPosted, journalID)
	}
	return journal, nil
}

// ensurePeriodOpen share-locks the period so it cannot be locked before commit.
func (s *journalService) ensurePeriodOpen(ctx context.Context, periodID string) error {
	period, err := s.periodRepo.FindPeriodByIDForShare(ctx, periodID)
	if err != nil {
		return asNamed(err, ErrPeriodNotFound, periodID)
	}
	if period.IsLocked() {
		return fmt.Errorf("%w: %s", ErrPeriodLocked, period.Label())
	}
	return nil
}
