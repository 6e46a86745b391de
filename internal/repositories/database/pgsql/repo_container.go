package pgsql

import (
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every PostgreSQL-backed repository over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:           newPgxTxManager(pool),
		FxRateRepo:          newPgxFxRateRepository(pool),
		PeriodRepo:          newPgxPeriodRepository(pool),
		JournalRepo:         newPgxJournalRepository(pool),
		CapitalMovementRepo: newPgxCapitalMovementRepository(pool),
		AccountRepo:         newPgxAccountRepository(pool),
		PartnerRepo:         newPgxPartnerRepository(pool),
		EmployeeRepo:        newPgxEmployeeRepository(pool),
		UserRepo:            newPgxUserRepository(pool),
	}
}
