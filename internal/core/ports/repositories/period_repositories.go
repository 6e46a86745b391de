package repositories

import (
	"context"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
)

// PeriodReader defines read operations for accounting periods
type PeriodReader interface {
	FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error)

	// FindPeriodByIDForShare reads a period and blocks concurrent locking until the transaction ends.
	FindPeriodByIDForShare(ctx context.Context, periodID string) (*domain.Period, error)

	FindPeriodByYearMonth(ctx context.Context, year, month int) (*domain.Period, error)

	// FindLatestOpenPeriod returns the OPEN period with the greatest (year, month).
	FindLatestOpenPeriod(ctx context.Context) (*domain.Period, error)

	// ListPeriods returns all periods, newest first.
	ListPeriods(ctx context.Context) ([]domain.Period, error)
}

// PeriodWriter defines write operations for accounting periods
type PeriodWriter interface {
	// SavePeriod inserts a period. A second period for the same month yields ErrDuplicate.
	SavePeriod(ctx context.Context, period domain.Period) error

	// FindPeriodByIDForUpdate reads a period and locks its row exclusively.
	FindPeriodByIDForUpdate(ctx context.Context, periodID string) (*domain.Period, error)

	// LockPeriod sets the period status to LOCKED.
	LockPeriod(ctx context.Context, periodID string, userID string, now time.Time) error
}

// PeriodRepositoryFacade combines all period repository interfaces
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
