package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/dto"
	"github.com/google/uuid"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, opts ...ServiceOption) portssvc.EmployeeSvcFacade {
	return &employeeService{BaseService: newBaseService(opts), employeeRepo: repo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: employee name is required", apperrors.ErrValidation)
	}

	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		Name:        name,
		Designation: strings.TrimSpace(req.Designation),
		IsActive:    true,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee")
		return nil, err
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, asNamed(err, ErrEmployeeNotFound, employeeID)
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	limit, offset = normalizePage(limit, offset)
	return s.employeeRepo.ListEmployees(ctx, limit, offset)
}
