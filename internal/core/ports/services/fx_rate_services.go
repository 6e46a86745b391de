package services

import (
	"context"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FxRateReaderSvc defines read operations for FX rates
type FxRateReaderSvc interface {
	// GetRate returns the rate for date, falling back to the most recent earlier rate.
	GetRate(ctx context.Context, date time.Time) (*domain.FxRate, error)

	// GetRateByID returns a rate by its identifier.
	GetRateByID(ctx context.Context, rateID string) (*domain.FxRate, error)

	// GetRatesInRange lists rates between from and to inclusive, newest first.
	GetRatesInRange(ctx context.Context, from, to time.Time) ([]domain.FxRate, error)

	// GetCurrentRate returns the latest rate dated today or earlier.
	GetCurrentRate(ctx context.Context) (*domain.FxRate, error)
}

// FxRateWriterSvc defines write operations for FX rates
type FxRateWriterSvc interface {
	// SetRate creates or replaces the rate of date unless that rate is locked.
	SetRate(ctx context.Context, date time.Time, rate decimal.Decimal, userID string) (*domain.FxRate, error)

	// LockRate freezes a rate, optionally replacing its value first.
	LockRate(ctx context.Context, rateID string, newRate *decimal.Decimal, userID string) (*domain.FxRate, error)
}

// FxRateSvcFacade combines all FX rate service interfaces
type FxRateSvcFacade interface {
	FxRateReaderSvc
	FxRateWriterSvc
}
