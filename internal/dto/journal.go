package dto

import (
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalRequest defines the body for starting a draft journal.
type CreateJournalRequest struct {
	Reference       string `json:"reference" binding:"required,max=100"`
	Description     string `json:"description"`
	TransactionDate string `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	PeriodID        string `json:"periodID" binding:"required,uuid"`
}

// AddJournalLineRequest defines the body for appending a line to a draft journal.
// Base amounts may be omitted and are then derived from the account currency.
type AddJournalLineRequest struct {
	AccountID        string           `json:"accountID" binding:"required,uuid"`
	Description      string           `json:"description"`
	DebitAmount      decimal.Decimal  `json:"debitAmount" binding:"gte=0"`
	CreditAmount     decimal.Decimal  `json:"creditAmount" binding:"gte=0"`
	DebitAmountBase  *decimal.Decimal `json:"debitAmountBase,omitempty" binding:"omitempty,gte=0"`
	CreditAmountBase *decimal.Decimal `json:"creditAmountBase,omitempty" binding:"omitempty,gte=0"`
	FxRate           *decimal.Decimal `json:"fxRate,omitempty" binding:"omitempty,gt=0"`
	PartnerID        *string          `json:"partnerID,omitempty" binding:"omitempty,uuid"`
	EmployeeID       *string          `json:"employeeID,omitempty" binding:"omitempty,uuid"`
}

// ListJournalsParams defines the query parameters for listing journals.
type ListJournalsParams struct {
	PeriodID  string `form:"periodID" binding:"omitempty,uuid"`
	Status    string `form:"status" binding:"omitempty,oneof=DRAFT POSTED"`
	FromDate  string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate    string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID           string           `json:"lineID"`
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
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID       string                `json:"journalID"`
	Reference       string                `json:"reference"`
	Description     string                `json:"description"`
	TransactionDate string                `json:"transactionDate"`
	PeriodID        string                `json:"periodID"`
	Status          domain.JournalStatus  `json:"status"`
	PostedAt        *time.Time            `json:"postedAt,omitempty"`
	PostedBy        *string               `json:"postedBy,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
	Lines           []JournalLineResponse `json:"lines,omitempty"`
}

// ListJournalsResponse is one page of journals.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToJournalLineResponse converts a domain.JournalLine to JournalLineResponse DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:           l.LineID,
		LineNumber:       l.LineNumber,
		AccountID:        l.AccountID,
		Description:      l.Description,
		DebitAmount:      l.DebitAmount,
		CreditAmount:     l.CreditAmount,
		DebitAmountBase:  l.DebitAmountBase,
		CreditAmountBase: l.CreditAmountBase,
		FxRate:           l.FxRate,
		PartnerID:        l.PartnerID,
		EmployeeID:       l.EmployeeID,
	}
}

// ToJournalResponse converts a domain.Journal, with any loaded lines, to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:       j.JournalID,
		Reference:       j.Reference,
		Description:     j.Description,
		TransactionDate: FormatDate(j.TransactionDate),
		PeriodID:        j.PeriodID,
		Status:          j.Status,
		PostedAt:        j.PostedAt,
		PostedBy:        j.PostedBy,
		CreatedAt:       j.CreatedAt,
		CreatedBy:       j.CreatedBy,
	}
	for i := range j.Lines {
		resp.Lines = append(resp.Lines, ToJournalLineResponse(&j.Lines[i]))
	}
	return resp
}

// ToListJournalsResponse converts a page of journals.
func ToListJournalsResponse(journals []domain.Journal, nextToken *string) ListJournalsResponse {
	resp := ListJournalsResponse{Journals: make([]JournalResponse, len(journals)), NextToken: nextToken}
	for i := range journals {
		resp.Journals[i] = ToJournalResponse(&journals[i])
	}
	return resp
}
