package dto

import (
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCapitalMovementRequest defines the body for recording a contribution or draw.
type CreateCapitalMovementRequest struct {
	PartnerID       string              `json:"partnerID" binding:"required,uuid"`
	MovementType    domain.MovementType `json:"movementType" binding:"required,movementtype"`
	Amount          decimal.Decimal     `json:"amount" binding:"required,gt=0"`
	Currency        domain.Currency     `json:"currency" binding:"required,currency"`
	Description     string              `json:"description"`
	TransactionDate string              `json:"transactionDate" binding:"required,datetime=2006-01-02"`
}

// LinkJournalRequest links a movement to the journal that books it.
type LinkJournalRequest struct {
	JournalID string `json:"journalID" binding:"required,uuid"`
}

// ListCapitalMovementsParams defines the query parameters for listing movements.
type ListCapitalMovementsParams struct {
	PartnerID    string `form:"partnerID" binding:"omitempty,uuid"`
	MovementType string `form:"movementType" binding:"omitempty,oneof=CONTRIBUTION DRAW"`
	FromDate     string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate       string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
}

// CapitalMovementResponse defines the data returned for a capital movement.
type CapitalMovementResponse struct {
	MovementID      string              `json:"movementID"`
	PartnerID       string              `json:"partnerID"`
	MovementType    domain.MovementType `json:"movementType"`
	Amount          decimal.Decimal     `json:"amount"`
	Currency        domain.Currency     `json:"currency"`
	AmountBase      decimal.Decimal     `json:"amountBase"`
	FxRate          *decimal.Decimal    `json:"fxRate,omitempty"`
	Description     string              `json:"description"`
	TransactionDate string              `json:"transactionDate"`
	JournalID       *string             `json:"journalID,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	CreatedBy       string              `json:"createdBy"`
}

// PartnerBalanceResponse defines the data returned for a partner's capital balance.
type PartnerBalanceResponse struct {
	PartnerID       string           `json:"partnerID"`
	AsOf            *string          `json:"asOf,omitempty"`
	USDBalance      decimal.Decimal  `json:"usdBalance"`
	PKRBalance      decimal.Decimal  `json:"pkrBalance"`
	FxRate          *decimal.Decimal `json:"fxRate,omitempty"`
	TotalBalancePKR decimal.Decimal  `json:"totalBalancePkr"`
}

// ToCapitalMovementResponse converts a domain.CapitalMovement to its DTO.
func ToCapitalMovementResponse(m *domain.CapitalMovement) CapitalMovementResponse {
	return CapitalMovementResponse{
		MovementID:      m.MovementID,
		PartnerID:       m.PartnerID,
		MovementType:    m.MovementType,
		Amount:          m.Amount,
		Currency:        m.Currency,
		AmountBase:      m.AmountBase,
		FxRate:          m.FxRate,
		Description:     m.Description,
		TransactionDate: FormatDate(m.TransactionDate),
		JournalID:       m.JournalID,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}

// ToCapitalMovementResponses converts a slice of domain.CapitalMovement.
func ToCapitalMovementResponses(ms []domain.CapitalMovement) []CapitalMovementResponse {
	out := make([]CapitalMovementResponse, len(ms))
	for i := range ms {
		out[i] = ToCapitalMovementResponse(&ms[i])
	}
	return out
}

// ToPartnerBalanceResponse converts a domain.PartnerBalance to its DTO.
func ToPartnerBalanceResponse(b *domain.PartnerBalance) PartnerBalanceResponse {
	resp := PartnerBalanceResponse{
		PartnerID:       b.PartnerID,
		USDBalance:      b.USDBalance,
		PKRBalance:      b.PKRBalance,
		FxRate:          b.FxRate,
		TotalBalancePKR: b.TotalBalancePKR,
	}
	if b.AsOf != nil {
		s := FormatDate(*b.AsOf)
		resp.AsOf = &s
	}
	return resp
}
