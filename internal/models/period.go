package models

import "time"

// Period is a row of periods.
type Period struct {
	PeriodID string     `db:"period_id"`
	Year     int        `db:"year"`
	Month    int        `db:"month"`
	Status   string     `db:"status"`
	LockedAt *time.Time `db:"locked_at"`
	LockedBy *string    `db:"locked_by"`
	AuditFields
}
