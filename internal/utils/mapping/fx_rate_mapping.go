package mapping

import (
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/models"
)

// ToModelFxRate converts a domain FxRate to a model FxRate
func ToModelFxRate(d domain.FxRate) models.FxRate {
	return models.FxRate{
		FxRateID:    d.FxRateID,
		RateDate:    domain.DateOnly(d.RateDate),
		USDToPKR:    d.USDToPKR,
		IsLocked:    d.IsLocked,
		LockedAt:    d.LockedAt,
		LockedBy:    d.LockedBy,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFxRate converts a model FxRate to a domain FxRate
func ToDomainFxRate(m models.FxRate) domain.FxRate {
	return domain.FxRate{
		FxRateID:    m.FxRateID,
		RateDate:    domain.DateOnly(m.RateDate),
		USDToPKR:    m.USDToPKR,
		IsLocked:    m.IsLocked,
		LockedAt:    m.LockedAt,
		LockedBy:    m.LockedBy,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
