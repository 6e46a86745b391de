package domain

import (
	"fmt"
	"time"
)

// PeriodStatus is the lifecycle state of an accounting period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodLocked PeriodStatus = "LOCKED"
)

// Period is a calendar month bucket that gates journal activity.
type Period struct {
	PeriodID string       `json:"periodID"`
	Year     int          `json:"year"`
	Month    int          `json:"month"` // 1-12
	Status   PeriodStatus `json:"status"`
	LockedAt *time.Time   `json:"lockedAt,omitempty"`
	LockedBy *string      `json:"lockedBy,omitempty"`
	AuditFields
}

// IsLocked reports whether the period no longer accepts journal changes.
func (p Period) IsLocked() bool {
	return p.Status == PeriodLocked
}

// Label formats the period as YYYY-MM.
func (p Period) Label() string {
	return fmt.Sprintf("%d-%02d", p.Year, p.Month)
}

// CloseValidation reports whether a period may be locked and, if not, why.
type CloseValidation struct {
	CanClose bool     `json:"canClose"`
	Errors   []string `json:"errors"`
}
