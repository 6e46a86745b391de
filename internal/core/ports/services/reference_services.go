package services

import (
	"context"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
)

// AccountSvcFacade manages the chart of accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// PartnerSvcFacade manages partners.
type PartnerSvcFacade interface {
	CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, userID string) (*domain.Partner, error)
	GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)
	ListPartners(ctx context.Context, limit int, offset int) ([]domain.Partner, error)
}

// EmployeeSvcFacade manages employees.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error)
}
