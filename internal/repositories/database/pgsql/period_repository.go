package pgsql

import (
	"context"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	"github.com/appdotbuilder/finops-audit-app/internal/models"
	"github.com/appdotbuilder/finops-audit-app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPeriodRepository struct {
	BaseRepository
}

func newPgxPeriodRepository(pool *pgxpool.Pool) *PgxPeriodRepository {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const selectPeriod = `
SELECT
	period_id, year, month, status, locked_at, locked_by,
	created_at, created_by, last_updated_at, last_updated_by
FROM periods
`

func (r *PgxPeriodRepository) findOne(ctx context.Context, filter string, args ...any) (*domain.Period, error) {
	m, err := queryOne[models.Period](ctx, r.querier(ctx), "period", selectPeriod+filter, args...)
	if err != nil {
		return nil, err
	}
	period := mapping.ToDomainPeriod(m)
	return &period, nil
}

func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.Period, error) {
	return r.findOne(ctx, "WHERE period_id = $1", periodID)
}

func (r *PgxPeriodRepository) FindPeriodByIDForShare(ctx context.Context, periodID string) (*domain.Period, error) {
	return r.findOne(ctx, "WHERE period_id = $1 FOR SHARE", periodID)
}

func (r *PgxPeriodRepository) FindPeriodByIDForUpdate(ctx context.Context, periodID string) (*domain.Period, error) {
	return r.findOne(ctx, "WHERE period_id = $1 FOR UPDATE", periodID)
}

func (r *PgxPeriodRepository) FindPeriodByYearMonth(ctx context.Context, year, month int) (*domain.Period, error) {
	return r.findOne(ctx, "WHERE year = $1 AND month = $2", year, month)
}

func (r *PgxPeriodRepository) FindLatestOpenPeriod(ctx context.Context) (*domain.Period, error) {
	return r.findOne(ctx, "WHERE status = $1 ORDER BY year DESC, month DESC LIMIT 1", string(domain.PeriodOpen))
}

func (r *PgxPeriodRepository) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	rows, err := queryRows[models.Period](ctx, r.querier(ctx), "periods", selectPeriod+"ORDER BY year DESC, month DESC")
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainPeriod), nil
}

func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.Period) error {
	m := mapping.ToModelPeriod(period)
	query := `
		INSERT INTO periods (
			period_id, year, month, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.querier(ctx).Exec(ctx, query,
		m.PeriodID, m.Year, m.Month, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return insertError(err, "period "+period.Label())
	}
	return nil
}

func (r *PgxPeriodRepository) LockPeriod(ctx context.Context, periodID string, userID string, now time.Time) error {
	query := `
		UPDATE periods SET
			status = $2,
			locked_at = $3,
			locked_by = $4,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE period_id = $1
	`
	return exec(ctx, r.querier(ctx), "period", query, periodID, string(domain.PeriodLocked), now, userID)
}
