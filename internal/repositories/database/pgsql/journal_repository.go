package pgsql

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/appdotbuilder/finops-audit-app/internal/apperrors"
	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	"github.com/appdotbuilder/finops-audit-app/internal/models"
	"github.com/appdotbuilder/finops-audit-app/internal/utils/mapping"
	"github.com/appdotbuilder/finops-audit-app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journals and their lines.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const selectJournal = `
SELECT
	journal_id, reference, description, transaction_date, period_id, status,
	posted_at, posted_by, created_at, created_by, last_updated_at, last_updated_by
FROM journals
`

const selectJournalLine = `
SELECT
	line_id, journal_id, line_number, account_id, description,
	debit_amount, credit_amount, debit_amount_base, credit_amount_base,
	fx_rate, partner_id, employee_id, created_at
FROM journal_lines
`

func (r *PgxJournalRepository) findJournal(ctx context.Context, filter string, args ...any) (*domain.Journal, error) {
	m, err := queryOne[models.Journal](ctx, r.querier(ctx), "journal", selectJournal+filter, args...)
	if err != nil {
		return nil, err
	}
	journal := mapping.ToDomainJournal(m)
	return &journal, nil
}

func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	return r.findJournal(ctx, "WHERE journal_id = $1", journalID)
}

func (r *PgxJournalRepository) FindJournalByIDForUpdate(ctx context.Context, journalID string) (*domain.Journal, error) {
	return r.findJournal(ctx, "WHERE journal_id = $1 FOR UPDATE", journalID)
}

// ListJournals pages with a keyset cursor over (transaction_date, created_at, journal_id).
// One extra row is fetched to know whether a next page exists.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, filter portsrepo.JournalFilter) ([]domain.Journal, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	conds := make([]string, 0, 5)
	args := make([]any, 0, 8)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.PeriodID != nil {
		conds = append(conds, "period_id = "+arg(*filter.PeriodID))
	}
	if filter.Status != nil {
		conds = append(conds, "status = "+arg(string(*filter.Status)))
	}
	if filter.FromDate != nil {
		conds = append(conds, "transaction_date >= "+arg(domain.DateOnly(*filter.FromDate)))
	}
	if filter.ToDate != nil {
		conds = append(conds, "transaction_date <= "+arg(domain.DateOnly(*filter.ToDate)))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", err)
		}
		conds = append(conds, "(transaction_date, created_at, journal_id) < ("+
			arg(cursor.Date)+"::date, "+arg(cursor.CreatedAt)+"::timestamptz, "+arg(cursor.ID)+"::uuid)")
	}

	query := selectJournal
	if len(conds) > 0 {
		query += "WHERE " + strings.Join(conds, " AND ") + " "
	}
	query += "ORDER BY transaction_date DESC, created_at DESC, journal_id DESC LIMIT " + arg(limit+1)

	rows, err := queryRows[models.Journal](ctx, r.querier(ctx), "journals", query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.TransactionDate, CreatedAt: last.CreatedAt, ID: last.JournalID})
		nextToken = &token
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainJournal), nextToken, nil
}

func (r *PgxJournalRepository) CountJournalsByPeriodAndStatus(ctx context.Context, periodID string, status domain.JournalStatus) (int, error) {
	var count int
	err := r.querier(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM journals WHERE period_id = $1 AND status = $2`,
		periodID, string(status),
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to count journals", err)
	}
	return count, nil
}

func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	m := mapping.ToModelJournal(journal)
	query := `
		INSERT INTO journals (
			journal_id, reference, description, transaction_date, period_id, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.querier(ctx).Exec(ctx, query,
		m.JournalID, m.Reference, m.Description, m.TransactionDate, m.PeriodID, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return insertError(err, "journal "+m.JournalID)
	}
	return nil
}

func (r *PgxJournalRepository) MarkJournalPosted(ctx context.Context, journalID string, userID string, now time.Time) error {
	query := `
		UPDATE journals SET
			status = $2,
			posted_at = $3,
			posted_by = $4,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE journal_id = $1 AND status = $5
	`
	return exec(ctx, r.querier(ctx), "journal", query,
		journalID, string(domain.Posted), now, userID, string(domain.Draft))
}

func (r *PgxJournalRepository) FindJournalLineByID(ctx context.Context, lineID string) (*domain.JournalLine, error) {
	m, err := queryOne[models.JournalLine](ctx, r.querier(ctx), "journal line", selectJournalLine+"WHERE line_id = $1", lineID)
	if err != nil {
		return nil, err
	}
	line := mapping.ToDomainJournalLine(m)
	return &line, nil
}

func (r *PgxJournalRepository) FindJournalLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	rows, err := queryRows[models.JournalLine](ctx, r.querier(ctx), "journal lines",
		selectJournalLine+"WHERE journal_id = $1 ORDER BY line_number", journalID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainJournalLine), nil
}

func (r *PgxJournalRepository) NextLineNumber(ctx context.Context, journalID string) (int, error) {
	var next int
	err := r.querier(ctx).QueryRow(ctx,
		`SELECT COALESCE(MAX(line_number), 0) + 1 FROM journal_lines WHERE journal_id = $1`,
		journalID,
	).Scan(&next)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to compute next line number", err)
	}
	return next, nil
}

func (r *PgxJournalRepository) SaveJournalLine(ctx context.Context, line domain.JournalLine) error {
	m := mapping.ToModelJournalLine(line)
	query := `
		INSERT INTO journal_lines (
			line_id, journal_id, line_number, account_id, description,
			debit_amount, credit_amount, debit_amount_base, credit_amount_base,
			fx_rate, partner_id, employee_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.querier(ctx).Exec(ctx, query,
		m.LineID, m.JournalID, m.LineNumber, m.AccountID, m.Description,
		m.DebitAmount, m.CreditAmount, m.DebitAmountBase, m.CreditAmountBase,
		m.FxRate, m.PartnerID, m.EmployeeID, m.CreatedAt,
	)
	if err != nil {
		return insertError(err, "journal line "+m.LineID)
	}
	return nil
}

func (r *PgxJournalRepository) DeleteJournalLine(ctx context.Context, lineID string) error {
	return exec(ctx, r.querier(ctx), "journal line", `DELETE FROM journal_lines WHERE line_id = $1`, lineID)
}
