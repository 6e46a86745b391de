package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
)

// Journal is a double-entry record. Lines may only change while it is a draft.
type Journal struct {
	JournalID       string        `json:"journalID"`
	Reference       string        `json:"reference"`
	Description     string        `json:"description"`
	TransactionDate time.Time     `json:"transactionDate"`
	PeriodID        string        `json:"periodID"`
	Status          JournalStatus `json:"status"`
	PostedAt        *time.Time    `json:"postedAt,omitempty"`
	PostedBy        *string       `json:"postedBy,omitempty"`
	AuditFields
	Lines []JournalLine `json:"lines,omitempty"` // Loaded on demand
}

// IsPosted reports whether the journal is immutable.
func (j Journal) IsPosted() bool {
	return j.Status == Posted
}

// JournalLine is one debit or credit of a journal, in transaction and base currency.
type JournalLine struct {
	LineID           string           `json:"lineID"`
	JournalID        string           `json:"journalID"`
	LineNumber       int              `json:"lineNumber"`
	AccountID        string           `json:"accountID"`
	Description      string           `json:"description"`
	DebitAmount      decimal.Decimal  `json:"debitAmount"`
	CreditAmount     decimal.Decimal  `json:"creditAmount"`
	DebitAmountBase  decimal.Decimal  `json:"debitAmountBase"`
	CreditAmountBase decimal.Decimal  `json:"creditAmountBase"`
	FxRate           *decimal.Decimal `json:"fxRate,omitempty"`
	PartnerID        *string          `json:"partnerID,omitempty"`
	EmployeeID       *string          `json:"employeeID,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// ValidationResult is the outcome of checking a journal for postability.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}
