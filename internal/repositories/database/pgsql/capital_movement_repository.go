package pgsql

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	"github.com/appdotbuilder/finops-audit-app/internal/models"
	"github.com/appdotbuilder/finops-audit-app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCapitalMovementRepository struct {
	BaseRepository
}

func newPgxCapitalMovementRepository(pool *pgxpool.Pool) *PgxCapitalMovementRepository {
	return &PgxCapitalMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CapitalMovementRepositoryFacade = (*PgxCapitalMovementRepository)(nil)

const selectCapitalMovement = `
SELECT
	movement_id, partner_id, movement_type, amount, currency, amount_base, fx_rate,
	description, transaction_date, journal_id,
	created_at, created_by, last_updated_at, last_updated_by
FROM capital_movements
`

func (r *PgxCapitalMovementRepository) findOne(ctx context.Context, filter string, args ...any) (*domain.CapitalMovement, error) {
	m, err := queryOne[models.CapitalMovement](ctx, r.querier(ctx), "capital movement", selectCapitalMovement+filter, args...)
	if err != nil {
		return nil, err
	}
	movement := mapping.ToDomainCapitalMovement(m)
	return &movement, nil
}

func (r *PgxCapitalMovementRepository) FindCapitalMovementByID(ctx context.Context, movementID string) (*domain.CapitalMovement, error) {
	return r.findOne(ctx, "WHERE movement_id = $1", movementID)
}

func (r *PgxCapitalMovementRepository) FindCapitalMovementByIDForUpdate(ctx context.Context, movementID string) (*domain.CapitalMovement, error) {
	return r.findOne(ctx, "WHERE movement_id = $1 FOR UPDATE", movementID)
}

func (r *PgxCapitalMovementRepository) ListCapitalMovements(ctx context.Context, filter portsrepo.CapitalMovementFilter) ([]domain.CapitalMovement, error) {
	conds := make([]string, 0, 4)
	args := make([]any, 0, 4)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.PartnerID != nil {
		conds = append(conds, "partner_id = "+arg(*filter.PartnerID))
	}
	if filter.MovementType != nil {
		conds = append(conds, "movement_type = "+arg(string(*filter.MovementType)))
	}
	if filter.FromDate != nil {
		conds = append(conds, "transaction_date >= "+arg(domain.DateOnly(*filter.FromDate)))
	}
	if filter.ToDate != nil {
		conds = append(conds, "transaction_date <= "+arg(domain.DateOnly(*filter.ToDate)))
	}

	query := selectCapitalMovement
	if len(conds) > 0 {
		query += "WHERE " + strings.Join(conds, " AND ") + " "
	}
	query += "ORDER BY transaction_date DESC, created_at DESC"

	rows, err := queryRows[models.CapitalMovement](ctx, r.querier(ctx), "capital movements", query, args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainCapitalMovement), nil
}

func (r *PgxCapitalMovementRepository) SaveCapitalMovement(ctx context.Context, movement domain.CapitalMovement) error {
	m := mapping.ToModelCapitalMovement(movement)
	query := `
		INSERT INTO capital_movements (
			movement_id, partner_id, movement_type, amount, currency, amount_base, fx_rate,
			description, transaction_date, journal_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.querier(ctx).Exec(ctx, query,
		m.MovementID, m.PartnerID, m.MovementType, m.Amount, m.Currency, m.AmountBase, m.FxRate,
		m.Description, m.TransactionDate, m.JournalID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return insertError(err, "capital movement "+m.MovementID)
	}
	return nil
}

func (r *PgxCapitalMovementRepository) LinkCapitalMovementJournal(ctx context.Context, movementID, journalID, userID string, now time.Time) error {
	query := `
		UPDATE capital_movements SET
			journal_id = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE movement_id = $1 AND journal_id IS NULL
	`
	return exec(ctx, r.querier(ctx), "capital movement", query, movementID, journalID, now, userID)
}
