package domain

import "github.com/shopspring/decimal"

// Partner is an owner of the business who contributes and draws capital.
type Partner struct {
	PartnerID      string          `json:"partnerID"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	ProfitSharePct decimal.Decimal `json:"profitSharePct"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
