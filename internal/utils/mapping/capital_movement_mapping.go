package mapping

import (
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/models"
)

// ToModelCapitalMovement converts a domain CapitalMovement to a model CapitalMovement
func ToModelCapitalMovement(d domain.CapitalMovement) models.CapitalMovement {
	return models.CapitalMovement{
		MovementID:      d.MovementID,
		PartnerID:       d.PartnerID,
		MovementType:    string(d.MovementType),
		Amount:          d.Amount,
		Currency:        string(d.Currency),
		AmountBase:      d.AmountBase,
		FxRate:          d.FxRate,
		Description:     d.Description,
		TransactionDate: domain.DateOnly(d.TransactionDate),
		JournalID:       d.JournalID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCapitalMovement converts a model CapitalMovement to a domain CapitalMovement
func ToDomainCapitalMovement(m models.CapitalMovement) domain.CapitalMovement {
	return domain.CapitalMovement{
		MovementID:      m.MovementID,
		PartnerID:       m.PartnerID,
		MovementType:    domain.MovementType(m.MovementType),
		Amount:          m.Amount,
		Currency:        domain.Currency(m.Currency),
		AmountBase:      m.AmountBase,
		FxRate:          m.FxRate,
		Description:     m.Description,
		TransactionDate: domain.DateOnly(m.TransactionDate),
		JournalID:       m.JournalID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
