package services

import (
	"context"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
)

// PeriodReaderSvc defines read operations for accounting periods
type PeriodReaderSvc interface {
	GetPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)
	GetPeriodByYearMonth(ctx context.Context, year, month int) (*domain.Period, error)

	// GetCurrentPeriod returns the latest OPEN period.
	GetCurrentPeriod(ctx context.Context) (*domain.Period, error)

	ListPeriods(ctx context.Context) ([]domain.Period, error)

	// ValidateClose reports whether the period could be locked now.
	ValidateClose(ctx context.Context, periodID string) (*domain.CloseValidation, error)
}

// PeriodWriterSvc defines write operations for accounting periods
type PeriodWriterSvc interface {
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, userID string) (*domain.Period, error)

	// LockPeriod closes the period for good. It fails while draft journals remain.
	LockPeriod(ctx context.Context, periodID string, userID string) (*domain.Period, error)
}

// PeriodSvcFacade combines all period service interfaces
type PeriodSvcFacade interface {
	PeriodReaderSvc
	PeriodWriterSvc
}
