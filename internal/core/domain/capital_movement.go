package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType distinguishes money put into the partnership from money taken out.
type MovementType string

const (
	Contribution MovementType = "CONTRIBUTION"
	Draw         MovementType = "DRAW"
)

// IsValid reports whether t is a known movement type.
func (t MovementType) IsValid() bool {
	return t == Contribution || t == Draw
}

// CapitalMovement records a partner contribution or draw. Records are append-only.
type CapitalMovement struct {
	MovementID      string           `json:"movementID"`
	PartnerID       string           `json:"partnerID"`
	MovementType    MovementType     `json:"movementType"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        Currency         `json:"currency"`
	AmountBase      decimal.Decimal  `json:"amountBase"`
	FxRate          *decimal.Decimal `json:"fxRate,omitempty"` // Set only for USD movements
	Description     string           `json:"description"`
	TransactionDate time.Time        `json:"transactionDate"`
	JournalID       *string          `json:"journalID,omitempty"`
	AuditFields
}

// SignedAmount returns the transaction-currency amount, negative for draws.
func (m CapitalMovement) SignedAmount() decimal.Decimal {
	if m.MovementType == Draw {
		return m.Amount.Neg()
	}
	return m.Amount
}

// PartnerBalance is a partner's net capital per currency and in base currency.
type PartnerBalance struct {
	PartnerID       string           `json:"partnerID"`
	AsOf            *time.Time       `json:"asOf,omitempty"`
	USDBalance      decimal.Decimal  `json:"usdBalance"`
	PKRBalance      decimal.Decimal  `json:"pkrBalance"`
	FxRate          *decimal.Decimal `json:"fxRate,omitempty"`
	TotalBalancePKR decimal.Decimal  `json:"totalBalancePkr"`
}
