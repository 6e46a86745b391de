package repositories

import (
	"context"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FxRateReader defines read operations for FX rate data
type FxRateReader interface {
	// FindFxRateByID retrieves a rate by its identifier.
	FindFxRateByID(ctx context.Context, rateID string) (*domain.FxRate, error)

	// FindFxRateByDate retrieves the rate stored for exactly date.
	FindFxRateByDate(ctx context.Context, date time.Time) (*domain.FxRate, error)

	// FindLatestFxRateOnOrBefore retrieves the rate with the greatest date not after date.
	FindLatestFxRateOnOrBefore(ctx context.Context, date time.Time) (*domain.FxRate, error)

	// ListFxRatesInRange lists rates with from <= date <= to, newest first.
	ListFxRatesInRange(ctx context.Context, from, to time.Time) ([]domain.FxRate, error)
}

// FxRateWriter defines write operations for FX rate data
type FxRateWriter interface {
	// FindFxRateByIDForUpdate retrieves a rate and locks its row until the transaction ends.
	FindFxRateByIDForUpdate(ctx context.Context, rateID string) (*domain.FxRate, error)

	// FindFxRateByDateForUpdate retrieves the rate for date and locks its row.
	FindFxRateByDateForUpdate(ctx context.Context, date time.Time) (*domain.FxRate, error)

	// UpsertFxRate inserts the rate for its date or overwrites an unlocked existing one.
	UpsertFxRate(ctx context.Context, rate domain.FxRate) (*domain.FxRate, error)

	// LockFxRate stores newRate (when non-nil) and marks the rate locked.
	LockFxRate(ctx context.Context, rateID string, newRate *decimal.Decimal, userID string, now time.Time) error
}

// FxRateRepositoryFacade combines all FX rate repository interfaces
type FxRateRepositoryFacade interface {
	FxRateReader
	FxRateWriter
}
