package pgsql

import (
	"context"

	"github.com/appdotbuilder/finops-audit-app/internal/core/domain"
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	"github.com/appdotbuilder/finops-audit-app/internal/models"
	"github.com/appdotbuilder/finops-audit-app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts entries.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const selectAccount = `
SELECT
	account_id, code, name, account_type, currency, is_active,
	created_at, created_by, last_updated_at, last_updated_by
FROM accounts
`

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (
			account_id, code, name, account_type, currency, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.querier(ctx).Exec(ctx, query,
		m.AccountID, m.Code, m.Name, m.AccountType, m.Currency, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return insertError(err, "account "+m.Code)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	m, err := queryOne[models.Account](ctx, r.querier(ctx), "account", selectAccount+"WHERE account_id = $1", accountID)
	if err != nil {
		return nil, err
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	rows, err := queryRows[models.Account](ctx, r.querier(ctx), "accounts",
		selectAccount+"ORDER BY code LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainAccount), nil
}
