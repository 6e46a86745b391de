package dto

import (
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
)

// CreatePeriodRequest defines the body for opening a new accounting period.
type CreatePeriodRequest struct {
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// PeriodResponse defines the data returned for a period.
type PeriodResponse struct {
	PeriodID  string              `json:"periodID"`
	Year      int                 `json:"year"`
	Month     int                 `json:"month"`
	Label     string              `json:"label"`
	Status    domain.PeriodStatus `json:"status"`
	LockedAt  *time.Time          `json:"lockedAt,omitempty"`
	LockedBy  *string             `json:"lockedBy,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	CreatedBy string              `json:"createdBy"`
}

// ToPeriodResponse converts a domain.Period to PeriodResponse DTO.
func ToPeriodResponse(p *domain.Period) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		Year:      p.Year,
		Month:     p.Month,
		Label:     p.Label(),
		Status:    p.Status,
		LockedAt:  p.LockedAt,
		LockedBy:  p.LockedBy,
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedBy,
	}
}

// ToPeriodResponses converts a slice of domain.Period.
func ToPeriodResponses(periods []domain.Period) []PeriodResponse {
	out := make([]PeriodResponse, len(periods))
	for i := range periods {
		out[i] = ToPeriodResponse(&periods[i])
	}
	return out
}
