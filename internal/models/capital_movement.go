package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CapitalMovement is a row of capital_movements.
type CapitalMovement struct {
	MovementID      string           `db:"movement_id"`
	PartnerID       string           `db:"partner_id"`
	MovementType    string           `db:"movement_type"`
	Amount          decimal.Decimal  `db:"amount"`
	Currency        string           `db:"currency"`
	AmountBase      decimal.Decimal  `db:"amount_base"`
	FxRate          *decimal.Decimal `db:"fx_rate"`
	Description     string           `db:"description"`
	TransactionDate time.Time        `db:"transaction_date"`
	JournalID       *string          `db:"journal_id"`
	AuditFields
}
