package mapping

import (
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal. Lines are not included.
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:       d.JournalID,
		Reference:       d.Reference,
		Description:     d.Description,
		TransactionDate: domain.DateOnly(d.TransactionDate),
		PeriodID:        d.PeriodID,
		Status:          string(d.Status),
		PostedAt:        d.PostedAt,
		PostedBy:        d.PostedBy,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:       m.JournalID,
		Reference:       m.Reference,
		Description:     m.Description,
		TransactionDate: domain.DateOnly(m.TransactionDate),
		PeriodID:        m.PeriodID,
		Status:          domain.JournalStatus(m.Status),
		PostedAt:        m.PostedAt,
		PostedBy:        m.PostedBy,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:           d.LineID,
		JournalID:        d.JournalID,
		LineNumber:       d.LineNumber,
		AccountID:        d.AccountID,
		Description:      d.Description,
		DebitAmount:      d.DebitAmount,
		CreditAmount:     d.CreditAmount,
		DebitAmountBase:  d.DebitAmountBase,
		CreditAmountBase: d.CreditAmountBase,
		FxRate:           d.FxRate,
		PartnerID:        d.PartnerID,
		EmployeeID:       d.EmployeeID,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:           m.LineID,
		JournalID:        m.JournalID,
		LineNumber:       m.LineNumber,
		AccountID:        m.AccountID,
		Description:      m.Description,
		DebitAmount:      m.DebitAmount,
		CreditAmount:     m.CreditAmount,
		DebitAmountBase:  m.DebitAmountBase,
		CreditAmountBase: m.CreditAmountBase,
		FxRate:           m.FxRate,
		PartnerID:        m.PartnerID,
		EmployeeID:       m.EmployeeID,
		CreatedAt:        m.CreatedAt,
	}
}
