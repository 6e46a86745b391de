package pgsql

import (
	"context"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	"github.com/appdotbuilder/finops-audit-app/internal/models"
	"github.com/appdotbuilder/finops-audit-app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPartnerRepository persists partners.
type PgxPartnerRepository struct {
	BaseRepository
}

func newPgxPartnerRepository(pool *pgxpool.Pool) *PgxPartnerRepository {
	return &PgxPartnerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartnerRepositoryFacade = (*PgxPartnerRepository)(nil)

const selectPartner = `
SELECT
	partner_id, name, email, profit_share_pct, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM partners
`

func (r *PgxPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) error {
	m := mapping.ToModelPartner(partner)
	query := `
		INSERT INTO partners (
			partner_id, name, email, profit_share_pct, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.querier(ctx).Exec(ctx, query,
		m.PartnerID, m.Name, m.Email, m.ProfitSharePct, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return insertError(err, "partner "+m.PartnerID)
	}
	return nil
}

func (r *PgxPartnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	m, err := queryOne[models.Partner](ctx, r.querier(ctx), "partner", selectPartner+"WHERE partner_id = $1", partnerID)
	if err != nil {
		return nil, err
	}
	partner := mapping.ToDomainPartner(m)
	return &partner, nil
}

func (r *PgxPartnerRepository) ListPartners(ctx context.Context, limit int, offset int) ([]domain.Partner, error) {
	rows, err := queryRows[models.Partner](ctx, r.querier(ctx), "partners",
		selectPartner+"ORDER BY name LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainPartner), nil
}

// PgxEmployeeRepository persists employees.
type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const selectEmployee = `
SELECT
	employee_id, name, designation, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM employees
`

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (
			employee_id, name, designation, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.querier(ctx).Exec(ctx, query,
		m.EmployeeID, m.Name, m.Designation, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return insertError(err, "employee "+m.EmployeeID)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	m, err := queryOne[models.Employee](ctx, r.querier(ctx), "employee", selectEmployee+"WHERE employee_id = $1", employeeID)
	if err != nil {
		return nil, err
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	rows, err := queryRows[models.Employee](ctx, r.querier(ctx), "employees",
		selectEmployee+"ORDER BY name LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainEmployee), nil
}
