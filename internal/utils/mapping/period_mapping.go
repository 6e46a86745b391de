package mapping

import (
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/models"
)

// ToModelPeriod converts a domain Period to a model Period
func ToModelPeriod(d domain.Period) models.Period {
	return models.Period{
		PeriodID:    d.PeriodID,
		Year:        d.Year,
		Month:       d.Month,
		Status:      string(d.Status),
		LockedAt:    d.LockedAt,
		LockedBy:    d.LockedBy,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts a model Period to a domain Period
func ToDomainPeriod(m models.Period) domain.Period {
	return domain.Period{
		PeriodID:    m.PeriodID,
		Year:        m.Year,
		Month:       m.Month,
		Status:      domain.PeriodStatus(m.Status),
		LockedAt:    m.LockedAt,
		LockedBy:    m.LockedBy,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
