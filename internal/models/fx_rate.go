package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FxRate is a row of fx_rates.
type FxRate struct {
	FxRateID string          `db:"fx_rate_id"`
	RateDate time.Time       `db:"rate_date"`
	USDToPKR decimal.Decimal `db:"usd_to_pkr_rate"`
	IsLocked bool            `db:"is_locked"`
	LockedAt *time.Time      `db:"locked_at"` // Nullable
	LockedBy *string         `db:"locked_by"` // Nullable
	AuditFields
}
