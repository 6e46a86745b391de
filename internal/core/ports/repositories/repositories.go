package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager           TransactionManager
	FxRateRepo          FxRateRepositoryFacade
	PeriodRepo          PeriodRepositoryFacade
	JournalRepo         JournalRepositoryFacade
	CapitalMovementRepo CapitalMovementRepositoryFacade
	AccountRepo         AccountRepositoryFacade
	PartnerRepo         PartnerRepositoryFacade
	EmployeeRepo        EmployeeRepositoryFacade
	UserRepo            UserRepositoryFacade
}
