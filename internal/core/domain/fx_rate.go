package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FxRate is the USD to PKR rate for one calendar date.
// Once locked the rate value can no longer change.
type FxRate struct {
	FxRateID string          `json:"fxRateID"`
	RateDate time.Time       `json:"rateDate"` // Calendar date, unique
	USDToPKR decimal.Decimal `json:"usdToPkrRate"`
	IsLocked bool            `json:"isLocked"`
	LockedAt *time.Time      `json:"lockedAt,omitempty"`
	LockedBy *string         `json:"lockedBy,omitempty"`
	AuditFields
}
