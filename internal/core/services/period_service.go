package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/google/uuid"
)

// periodService manages accounting periods and the OPEN to LOCKED transition.
type periodService struct {
	BaseService
	txm         portsrepo.TransactionManager
	periodRepo  portsrepo.PeriodRepositoryFacade
	journalRepo portsrepo.JournalReader
	userRepo    portsrepo.UserReader
}

// NewPeriodService creates a new period service.
func NewPeriodService(
	txm portsrepo.TransactionManager,
	periodRepo portsrepo.PeriodRepositoryFacade,
	journalRepo portsrepo.JournalReader,
	userRepo portsrepo.UserReader,
	opts ...ServiceOption,
) portssvc.PeriodSvcFacade {
	return &periodService{
		BaseService: newBaseService(opts),
		txm:         txm,
		periodRepo:  periodRepo,
		journalRepo: journalRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

func (s *periodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, userID string) (*domain.Period, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	if req.Year < 2000 || req.Year > 2100 {
		return nil, fmt.Errorf("%w: year must be between 2000 and 2100", apperrors.ErrValidation)
	}

	period := domain.Period{
		PeriodID:    uuid.NewString(),
		Year:        req.Year,
		Month:       req.Month,
		Status:      domain.PeriodOpen,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}

	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := s.periodRepo.FindPeriodByYearMonth(ctx, req.Year, req.Month)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrDuplicatePeriod, period.Label())
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		// The unique (year, month) constraint still decides concurrent creates.
		if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return fmt.Errorf("%w: %s", ErrDuplicatePeriod, period.Label())
			}
			return err
		}
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create period", slog.String("period", period.Label()))
		return nil, err
	}

	s.LogInfo(ctx, "Period created", slog.String("period_id", period.PeriodID), slog.String("period", period.Label()))
	return &period, nil
}

func (s *periodService) GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, asNamed(err, ErrPeriodNotFound, periodID)
	}
	return period, nil
}

func (s *periodService) GetPeriodByYearMonth(ctx context.Context, year, month int) (*domain.Period, error) {
	period, err := s.periodRepo.FindPeriodByYearMonth(ctx, year, month)
	if err != nil {
		return nil, asNamed(err, ErrPeriodNotFound, domain.Period{Year: year, Month: month}.Label())
	}
	return period, nil
}

func (s *periodService) GetCurrentPeriod(ctx context.Context) (*domain.Period, error) {
	period, err := s.periodRepo.FindLatestOpenPeriod(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNoOpenPeriod
		}
		return nil, err
	}
	return period, nil
}

func (s *periodService) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	return s.periodRepo.ListPeriods(ctx)
}

func (s *periodService) ValidateClose(ctx context.Context, periodID string) (*domain.CloseValidation, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, asNamed(err, ErrPeriodNotFound, periodID)
	}
	return s.validateClose(ctx, period)
}

func (s *periodService) validateClose(ctx context.Context, period *domain.Period) (*domain.CloseValidation, error) {
	errs := make([]string, 0)
	if period.IsLocked() {
		errs = append(errs, "period is already locked")
	}

	drafts, err := s.journalRepo.CountJournalsByPeriodAndStatus(ctx, period.PeriodID, domain.Draft)
	if err != nil {
		return nil, err
	}
	if drafts > 0 {
		errs = append(errs, fmt.Sprintf("period contains %d draft journal(s)", drafts))
	}

	return &domain.CloseValidation{CanClose: len(errs) == 0, Errors: errs}, nil
}

func (s *periodService) LockPeriod(ctx context.Context, periodID string, userID string) (*domain.Period, error) {
	var locked *domain.Period
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		// Held until commit so no journal can be created in the period meanwhile.
		period, err := s.periodRepo.FindPeriodByIDForUpdate(ctx, periodID)
		if err != nil {
			return asNamed(err, ErrPeriodNotFound, periodID)
		}
		if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
			return asNamed(err, ErrUserNotFound, userID)
		}
		if period.IsLocked() {
			return fmt.Errorf("%w: %s", ErrPeriodAlreadyLocked, period.Label())
		}

		validation, err := s.validateClose(ctx, period)
		if err != nil {
			return err
		}
		if !validation.CanClose {
			return apperrors.WithDetails(ErrCannotClosePeriod, validation.Errors...)
		}

		if err := s.periodRepo.LockPeriod(ctx, periodID, userID, s.Now()); err != nil {
			return err
		}
		locked, err = s.periodRepo.FindPeriodByID(ctx, periodID)
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to lock period", slog.String("period_id", periodID))
		return nil, err
	}

	s.LogInfo(ctx, "Period locked",
		slog.String("period_id", periodID),
		slog.String("period", locked.Label()),
		slog.String("locked_by", userID))
	return locked, nil
}
