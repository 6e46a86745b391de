package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal is a row of journals.
type Journal struct {
	JournalID       string     `db:"journal_id"`
	Reference       string     `db:"reference"`
	Description     string     `db:"description"`
	TransactionDate time.Time  `db:"transaction_date"`
	PeriodID        string     `db:"period_id"`
	Status          string     `db:"status"` // DRAFT or POSTED
	PostedAt        *time.Time `db:"posted_at"`
	PostedBy        *string    `db:"posted_by"`
	AuditFields
}

// JournalLine is a row of journal_lines.
type JournalLine struct {
	LineID           string           `db:"line_id"`
	JournalID        string           `db:"journal_id"`
	LineNumber       int              `db:"line_number"`
	AccountID        string           `db:"account_id"`
	Description      string           `db:"description"`
	DebitAmount      decimal.Decimal  `db:"debit_amount"`
	CreditAmount     decimal.Decimal  `db:"credit_amount"`
	DebitAmountBase  decimal.Decimal  `db:"debit_amount_base"`
	CreditAmountBase decimal.Decimal  `db:"credit_amount_base"`
	FxRate           *decimal.Decimal `db:"fx_rate"`
	PartnerID        *string          `db:"partner_id"`
	EmployeeID       *string          `db:"employee_id"`
	CreatedAt        time.Time        `db:"created_at"`
}
