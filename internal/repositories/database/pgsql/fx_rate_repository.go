package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	"github.com/appdotbuilder/finops-audit-app/internal/models"
	"github.com/appdotbuilder/finops-audit-app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxFxRateRepository struct {
	BaseRepository
}

func newPgxFxRateRepository(pool *pgxpool.Pool) *PgxFxRateRepository {
	return &PgxFxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FxRateRepositoryFacade = (*PgxFxRateRepository)(nil)

const fxRateColumns = `
	fx_rate_id, rate_date, usd_to_pkr_rate, is_locked, locked_at, locked_by,
	created_at, created_by, last_updated_at, last_updated_by`

const selectFxRate = `SELECT` + fxRateColumns + ` FROM fx_rates `

func (r *PgxFxRateRepository) findOne(ctx context.Context, filter string, args ...any) (*domain.FxRate, error) {
	m, err := queryOne[models.FxRate](ctx, r.querier(ctx), "fx rate", selectFxRate+filter, args...)
	if err != nil {
		return nil, err
	}
	rate := mapping.ToDomainFxRate(m)
	return &rate, nil
}

func (r *PgxFxRateRepository) FindFxRateByID(ctx context.Context, rateID string) (*domain.FxRate, error) {
	return r.findOne(ctx, "WHERE fx_rate_id = $1", rateID)
}

func (r *PgxFxRateRepository) FindFxRateByDate(ctx context.Context, date time.Time) (*domain.FxRate, error) {
	return r.findOne(ctx, "WHERE rate_date = $1", domain.DateOnly(date))
}

func (r *PgxFxRateRepository) FindLatestFxRateOnOrBefore(ctx context.Context, date time.Time) (*domain.FxRate, error) {
	return r.findOne(ctx, "WHERE rate_date <= $1 ORDER BY rate_date DESC LIMIT 1", domain.DateOnly(date))
}

func (r *PgxFxRateRepository) ListFxRatesInRange(ctx context.Context, from, to time.Time) ([]domain.FxRate, error) {
	rows, err := queryRows[models.FxRate](ctx, r.querier(ctx), "fx rates",
		selectFxRate+"WHERE rate_date BETWEEN $1 AND $2 ORDER BY rate_date DESC",
		domain.DateOnly(from), domain.DateOnly(to))
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainFxRate), nil
}

func (r *PgxFxRateRepository) FindFxRateByIDForUpdate(ctx context.Context, rateID string) (*domain.FxRate, error) {
	return r.findOne(ctx, "WHERE fx_rate_id = $1 FOR UPDATE", rateID)
}

func (r *PgxFxRateRepository) FindFxRateByDateForUpdate(ctx context.Context, date time.Time) (*domain.FxRate, error) {
	return r.findOne(ctx, "WHERE rate_date = $1 FOR UPDATE", domain.DateOnly(date))
}

// UpsertFxRate inserts or overwrites the rate of a date in one statement.
// A locked row is left untouched and reported as ErrInvalidState.
func (r *PgxFxRateRepository) UpsertFxRate(ctx context.Context, rate domain.FxRate) (*domain.FxRate, error) {
	m := mapping.ToModelFxRate(rate)
	query := `
		INSERT INTO fx_rates (
			fx_rate_id, rate_date, usd_to_pkr_rate, is_locked,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, FALSE, $4, $5, $6, $7)
		ON CONFLICT (rate_date) DO UPDATE SET
			usd_to_pkr_rate = EXCLUDED.usd_to_pkr_rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		WHERE NOT fx_rates.is_locked
		RETURNING` + fxRateColumns

	saved, err := queryOne[models.FxRate](ctx, r.querier(ctx), "fx rate", query,
		m.FxRateID, m.RateDate, m.USDToPKR,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidState
		}
		return nil, err
	}
	out := mapping.ToDomainFxRate(saved)
	return &out, nil
}

func (r *PgxFxRateRepository) LockFxRate(ctx context.Context, rateID string, newRate *decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE fx_rates SET
			usd_to_pkr_rate = COALESCE($2::numeric, usd_to_pkr_rate),
			is_locked = TRUE,
			locked_at = $3,
			locked_by = $4,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE fx_rate_id = $1 AND NOT is_locked
	`
	return exec(ctx, r.querier(ctx), "fx rate", query, rateID, newRate, now, userID)
}
