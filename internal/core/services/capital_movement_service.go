package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/appdotbuilder/finops-audit-app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// capitalMovementService records partner contributions and draws in base currency.
type capitalMovementService struct {
	BaseService
	txm          portsrepo.TransactionManager
	movementRepo portsrepo.CapitalMovementRepositoryFacade
	partnerRepo  portsrepo.PartnerRepositoryFacade
	journalRepo  portsrepo.JournalReader
	userRepo     portsrepo.UserReader
	fxRates      portssvc.FxRateReaderSvc
}

// NewCapitalMovementService creates a new capital movement service.
func NewCapitalMovementService(
	txm portsrepo.TransactionManager,
	movementRepo portsrepo.CapitalMovementRepositoryFacade,
	partnerRepo portsrepo.PartnerRepositoryFacade,
	journalRepo portsrepo.JournalReader,
	userRepo portsrepo.UserReader,
	fxRates portssvc.FxRateReaderSvc,
	opts ...ServiceOption,
) portssvc.CapitalMovementSvcFacade {
	return &capitalMovementService{
		BaseService:  newBaseService(opts),
		txm:          txm,
		movementRepo: movementRepo,
		partnerRepo:  partnerRepo,
		journalRepo:  journalRepo,
		userRepo:     userRepo,
		fxRates:      fxRates,
	}
}

var _ portssvc.CapitalMovementSvcFacade = (*capitalMovementService)(nil)

func (s *capitalMovementService) CreateMovement(ctx context.Context, req dto.CreateCapitalMovementRequest, userID string) (*domain.CapitalMovement, error) {
	if !req.MovementType.IsValid() {
		return nil, fmt.Errorf("%w: movement type must be CONTRIBUTION or DRAW", apperrors.ErrValidation)
	}
	if !req.Currency.IsValid() {
		return nil, fmt.Errorf("%w: currency must be USD or PKR", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if !accounting.FitsScale(req.Amount, accounting.AmountPlaces) {
		return nil, fmt.Errorf("%w: amount must have at most %d decimal places", apperrors.ErrValidation, accounting.AmountPlaces)
	}
	txDate, err := dto.ParseDate(req.TransactionDate)
	if err != nil {
		return nil, err
	}

	movement := domain.CapitalMovement{
		MovementID:      uuid.NewString(),
		PartnerID:       req.PartnerID,
		MovementType:    req.MovementType,
		Amount:          req.Amount,
		Currency:        req.Currency,
		AmountBase:      req.Amount,
		Description:     req.Description,
		TransactionDate: txDate,
		AuditFields:     domain.NewAuditFields(userID, s.Now()),
	}

	err = s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.partnerRepo.FindPartnerByID(ctx, req.PartnerID); err != nil {
			return asNamed(err, ErrPartnerNotFound, req.PartnerID)
		}
		if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
			return asNamed(err, ErrUserNotFound, userID)
		}

		if movement.Currency != domain.BaseCurrency {
			rate, err := s.rateFor(ctx, txDate)
			if err != nil {
				return err
			}
			movement.FxRate = &rate
			movement.AmountBase = accounting.ConvertToBase(movement.Amount, rate)
		}

		return s.movementRepo.SaveCapitalMovement(ctx, movement)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create capital movement", slog.String("partner_id", req.PartnerID))
		return nil, err
	}

	s.LogInfo(ctx, "Capital movement recorded",
		slog.String("movement_id", movement.MovementID),
		slog.String("partner_id", movement.PartnerID),
		slog.String("type", string(movement.MovementType)),
		slog.String("amount_base", movement.AmountBase.String()))
	return &movement, nil
}

// rateFor returns the USD to PKR rate in effect on date.
func (s *capitalMovementService) rateFor(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	fx, err := s.fxRates.GetRate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrFxRateNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrNoFxRate, dto.FormatDate(date))
		}
		return decimal.Zero, err
	}
	return fx.USDToPKR, nil
}

func (s *capitalMovementService) GetMovement(ctx context.Context, movementID string) (*domain.CapitalMovement, error) {
	movement, err := s.movementRepo.FindCapitalMovementByID(ctx, movementID)
	if err != nil {
		return nil, asNamed(err, ErrMovementNotFound, movementID)
	}
	return movement, nil
}

func (s *capitalMovementService) ListMovements(ctx context.Context, params dto.ListCapitalMovementsParams) ([]domain.CapitalMovement, error) {
	filter := portsrepo.CapitalMovementFilter{}
	if params.PartnerID != "" {
		filter.PartnerID = &params.PartnerID
	}
	if params.MovementType != "" {
		movementType := domain.MovementType(params.MovementType)
		if !movementType.IsValid() {
			return nil, fmt.Errorf("%w: unknown movement type %q", apperrors.ErrValidation, params.MovementType)
		}
		filter.MovementType = &movementType
	}
	var err error
	if filter.FromDate, err = dto.ParseOptionalDate(params.FromDate); err != nil {
		return nil, err
	}
	if filter.ToDate, err = dto.ParseOptionalDate(params.ToDate); err != nil {
		return nil, err
	}
	return s.movementRepo.ListCapitalMovements(ctx, filter)
}

func (s *capitalMovementService) ListByPartner(ctx context.Context, partnerID string) ([]domain.CapitalMovement, error) {
	if _, err := s.partnerRepo.FindPartnerByID(ctx, partnerID); err != nil {
		return nil, asNamed(err, ErrPartnerNotFound, partnerID)
	}
	return s.movementRepo.ListCapitalMovements(ctx, portsrepo.CapitalMovementFilter{PartnerID: &partnerID})
}

func (s *capitalMovementService) GetPartnerBalance(ctx context.Context, partnerID string, asOf *time.Time) (*domain.PartnerBalance, error) {
	if _, err := s.partnerRepo.FindPartnerByID(ctx, partnerID); err != nil {
		return nil, asNamed(err, ErrPartnerNotFound, partnerID)
	}

	filter := portsrepo.CapitalMovementFilter{PartnerID: &partnerID}
	if asOf != nil {
		d := domain.DateOnly(*asOf)
		asOf = &d
		filter.ToDate = asOf
	}
	movements, err := s.movementRepo.ListCapitalMovements(ctx, filter)
	if err != nil {
		return nil, err
	}

	balance := domain.PartnerBalance{
		PartnerID:  partnerID,
		AsOf:       asOf,
		USDBalance: decimal.Zero,
		PKRBalance: decimal.Zero,
	}
	for _, m := range movements {
		switch m.Currency {
		case domain.USD:
			balance.USDBalance = balance.USDBalance.Add(m.SignedAmount())
		case domain.PKR:
			balance.PKRBalance = balance.PKRBalance.Add(m.SignedAmount())
		}
	}

	balance.TotalBalancePKR = balance.PKRBalance
	if !balance.USDBalance.IsZero() {
		rateDate := domain.DateOnly(s.Now())
		if asOf != nil {
			rateDate = *asOf
		}
		rate, err := s.rateFor(ctx, rateDate)
		if err != nil {
			return nil, err
		}
		balance.FxRate = &rate
		balance.TotalBalancePKR = balance.PKRBalance.Add(accounting.ConvertToBase(balance.USDBalance, rate))
	}

	return &balance, nil
}

func (s *capitalMovementService) LinkJournal(ctx context.Context, movementID, journalID, userID string) (*domain.CapitalMovement, error) {
	var linked *domain.CapitalMovement
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		movement, err := s.movementRepo.FindCapitalMovementByIDForUpdate(ctx, movementID)
		if err != nil {
			return asNamed(err, ErrMovementNotFound, movementID)
		}
		if movement.JournalID != nil {
			return fmt.Errorf("%w: %s", ErrMovementAlreadyLinked, movementID)
		}
		if _, err := s.journalRepo.FindJournalByID(ctx, journalID); err != nil {
			return asNamed(err, ErrJournalNotFound, journalID)
		}
		if err := s.movementRepo.LinkCapitalMovementJournal(ctx, movementID, journalID, userID, s.Now()); err != nil {
			return err
		}
		linked, err = s.movementRepo.FindCapitalMovementByID(ctx, movementID)
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to link capital movement", slog.String("movement_id", movementID))
		return nil, err
	}

	s.LogInfo(ctx, "Capital movement linked to journal", slog.String("movement_id", movementID), slog.String("journal_id", journalID))
	return linked, nil
}
