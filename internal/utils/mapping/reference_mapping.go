package mapping

import (
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/models"
)

func ToModelPartner(d domain.Partner) models.Partner {
	return models.Partner{
		PartnerID:      d.PartnerID,
		Name:           d.Name,
		Email:          d.Email,
		ProfitSharePct: d.ProfitSharePct,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPartner(m models.Partner) domain.Partner {
	return domain.Partner{
		PartnerID:      m.PartnerID,
		Name:           m.Name,
		Email:          m.Email,
		ProfitSharePct: m.ProfitSharePct,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:  d.EmployeeID,
		Name:        d.Name,
		Designation: d.Designation,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:  m.EmployeeID,
		Name:        m.Name,
		Designation: m.Designation,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
