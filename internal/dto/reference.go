package dto

import (
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartnerRequest defines the data needed to register a partner.
type CreatePartnerRequest struct {
	Name           string          `json:"name" binding:"required"`
	Email          string          `json:"email" binding:"omitempty,email"`
	ProfitSharePct decimal.Decimal `json:"profitSharePct" binding:"gte=0,lte=100"`
}

// CreateEmployeeRequest defines the data needed to register an employee.
type CreateEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation"`
}

type PartnerResponse struct {
	PartnerID      string          `json:"partnerID"`
	Name           string          `json:"name"`
	Email          string          `json:"email,omitempty"`
	ProfitSharePct decimal.Decimal `json:"profitSharePct"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type EmployeeResponse struct {
	EmployeeID  string    `json:"employeeID"`
	Name        string    `json:"name"`
	Designation string    `json:"designation,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		PartnerID:      p.PartnerID,
		Name:           p.Name,
		Email:          p.Email,
		ProfitSharePct: p.ProfitSharePct,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
}

func ToPartnerResponses(partners []domain.Partner) []PartnerResponse {
	out := make([]PartnerResponse, len(partners))
	for i := range partners {
		out[i] = ToPartnerResponse(&partners[i])
	}
	return out
}

func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		Designation: e.Designation,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
	}
}

func ToEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(employees))
	for i := range employees {
		out[i] = ToEmployeeResponse(&employees[i])
	}
	return out
}
