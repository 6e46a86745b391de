package repositories

import (
	"context"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
)

// PartnerRepositoryFacade persists partners.
type PartnerRepositoryFacade interface {
	SavePartner(ctx context.Context, partner domain.Partner) error
	FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)
	ListPartners(ctx context.Context, limit int, offset int) ([]domain.Partner, error)
}

// EmployeeRepositoryFacade persists employees.
type EmployeeRepositoryFacade interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error)
}
