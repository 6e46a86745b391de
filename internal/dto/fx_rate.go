package dto

import (
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetFxRateRequest defines the body for storing the rate of a date.
type SetFxRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required,gt=0"`
}

// LockFxRateRequest optionally replaces the rate value while locking it.
type LockFxRateRequest struct {
	Rate *decimal.Decimal `json:"rate,omitempty" binding:"omitempty,gt=0"`
}

// FxRateRangeParams are the query parameters of a range listing.
type FxRateRangeParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// FxRateResponse defines the data returned for an FX rate.
type FxRateResponse struct {
	FxRateID  string          `json:"fxRateID"`
	RateDate  string          `json:"rateDate"`
	Rate      decimal.Decimal `json:"usdToPkrRate"`
	IsLocked  bool            `json:"isLocked"`
	LockedAt  *time.Time      `json:"lockedAt,omitempty"`
	LockedBy  *string         `json:"lockedBy,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	CreatedBy string          `json:"createdBy"`
}

// ToFxRateResponse converts a domain.FxRate to FxRateResponse DTO.
func ToFxRateResponse(r *domain.FxRate) FxRateResponse {
	return FxRateResponse{
		FxRateID:  r.FxRateID,
		RateDate:  FormatDate(r.RateDate),
		Rate:      r.USDToPKR,
		IsLocked:  r.IsLocked,
		LockedAt:  r.LockedAt,
		LockedBy:  r.LockedBy,
		CreatedAt: r.CreatedAt,
		CreatedBy: r.CreatedBy,
	}
}

// ToFxRateResponses converts a slice of domain.FxRate.
func ToFxRateResponses(rates []domain.FxRate) []FxRateResponse {
	out := make([]FxRateResponse, len(rates))
	for i := range rates {
		out[i] = ToFxRateResponse(&rates[i])
	}
	return out
}
