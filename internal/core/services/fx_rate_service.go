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

// fxRateService keeps one USD to PKR rate per date and enforces lock-then-immutable.
type fxRateService struct {
	BaseService
	txm      portsrepo.TransactionManager
	rateRepo portsrepo.FxRateRepositoryFacade
}

// NewFxRateService creates a new FX rate service.
func NewFxRateService(txm portsrepo.TransactionManager, rateRepo portsrepo.FxRateRepositoryFacade, opts ...ServiceOption) portssvc.FxRateSvcFacade {
	return &fxRateService{
		BaseService: newBaseService(opts),
		txm:         txm,
		rateRepo:    rateRepo,
	}
}

var _ portssvc.FxRateSvcFacade = (*fxRateService)(nil)

func (s *fxRateService) SetRate(ctx context.Context, date time.Time, rate decimal.Decimal, userID string) (*domain.FxRate, error) {
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: fx rate must be greater than zero", apperrors.ErrValidation)
	}
	if !accounting.FitsScale(rate, accounting.RatePlaces) {
		return nil, fmt.Errorf("%w: fx rate must have at most %d decimal places", apperrors.ErrValidation, accounting.RatePlaces)
	}
	date = domain.DateOnly(date)
	logger := s.GetLogger(ctx).With(slog.String("rate_date", dto.FormatDate(date)))

	var saved *domain.FxRate
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.rateRepo.FindFxRateByDateForUpdate(ctx, date)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		now := s.Now()
		record := domain.FxRate{
			FxRateID:    uuid.NewString(),
			RateDate:    date,
			USDToPKR:    rate,
			AuditFields: domain.NewAuditFields(userID, now),
		}
		if existing != nil {
			if existing.IsLocked {
				return fmt.Errorf("%w: %s", ErrFxRateLocked, dto.FormatDate(date))
			}
			record = *existing
			record.USDToPKR = rate
			record.LastUpdatedAt = now
			record.LastUpdatedBy = userID
		}

		saved, err = s.rateRepo.UpsertFxRate(ctx, record)
		if errors.Is(err, apperrors.ErrInvalidState) {
			return fmt.Errorf("%w: %s", ErrFxRateLocked, dto.FormatDate(date))
		}
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to set fx rate", slog.String("rate_date", dto.FormatDate(date)))
		return nil, err
	}

	logger.Info("FX rate set", slog.String("fx_rate_id", saved.FxRateID), slog.String("rate", rate.String()))
	return saved, nil
}

// GetRate returns the rate stored for date, else the latest earlier one.
func (s *fxRateService) GetRate(ctx context.Context, date time.Time) (*domain.FxRate, error) {
	date = domain.DateOnly(date)
	rate, err := s.rateRepo.FindFxRateByDate(ctx, date)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	rate, err = s.rateRepo.FindLatestFxRateOnOrBefore(ctx, date)
	if err != nil {
		return nil, asNamed(err, ErrFxRateNotFound, "on or before "+dto.FormatDate(date))
	}
	s.LogDebug(ctx, "No fx rate on date, using earlier rate",
		slog.String("requested_date", dto.FormatDate(date)),
		slog.String("rate_date", dto.FormatDate(rate.RateDate)))
	return rate, nil
}

func (s *fxRateService) GetRateByID(ctx context.Context, rateID string) (*domain.FxRate, error) {
	rate, err := s.rateRepo.FindFxRateByID(ctx, rateID)
	if err != nil {
		return nil, asNamed(err, ErrFxRateNotFound, rateID)
	}
	return rate, nil
}

func (s *fxRateService) GetRatesInRange(ctx context.Context, from, to time.Time) ([]domain.FxRate, error) {
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if from.After(to) {
		return nil, fmt.Errorf("%w: from date must not be after to date", apperrors.ErrValidation)
	}
	return s.rateRepo.ListFxRatesInRange(ctx, from, to)
}

func (s *fxRateService) GetCurrentRate(ctx context.Context) (*domain.FxRate, error) {
	today := domain.DateOnly(s.Now())
	rate, err := s.rateRepo.FindLatestFxRateOnOrBefore(ctx, today)
	if err != nil {
		return nil, asNamed(err, ErrNoRateAvailable, "as of "+dto.FormatDate(today))
	}
	return rate, nil
}

func (s *fxRateService) LockRate(ctx context.Context, rateID string, newRate *decimal.Decimal, userID string) (*domain.FxRate, error) {
	if newRate != nil && !newRate.IsPositive() {
		return nil, fmt.Errorf("%w: fx rate must be greater than zero", apperrors.ErrValidation)
	}

	var locked *domain.FxRate
	err := s.txm.WithTransaction(ctx, func(ctx context.Context) error {
		rate, err := s.rateRepo.FindFxRateByIDForUpdate(ctx, rateID)
		if err != nil {
			return asNamed(err, ErrFxRateNotFound, rateID)
		}
		if rate.IsLocked {
			return fmt.Errorf("%w: %s", ErrFxRateAlreadyLocked, dto.FormatDate(rate.RateDate))
		}
		if err := s.rateRepo.LockFxRate(ctx, rateID, newRate, userID, s.Now()); err != nil {
			return err
		}
		locked, err = s.rateRepo.FindFxRateByID(ctx, rateID)
		return err
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to lock fx rate", slog.String("fx_rate_id", rateID))
		return nil, err
	}

	s.LogInfo(ctx, "FX rate locked",
		slog.String("fx_rate_id", rateID),
		slog.String("rate_date", dto.FormatDate(locked.RateDate)),
		slog.String("locked_by", userID))
	return locked, nil
}
