package services

import (
	portsrepo "github.com/appdotbuilder/finops-audit-app/internal/core/ports/repositories"
	portssvc "github.com/appdotbuilder/finops-audit-app/internal/core/ports/services"
	"github.com/appdotbuilder/finops-audit-app/internal/platform/config"
	"github.com/appdotbuilder/finops-audit-app/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// FX rates first: journals and capital movements read through it.
	container.FxRate = NewFxRateService(repos.TxManager, repos.FxRateRepo, opts...)

	container.Period = NewPeriodService(repos.TxManager, repos.PeriodRepo, repos.JournalRepo, repos.UserRepo, opts...)
	container.Journal = NewJournalService(
		repos.TxManager,
		repos.JournalRepo,
		repos.PeriodRepo,
		repos.AccountRepo,
		repos.PartnerRepo,
		repos.EmployeeRepo,
		repos.UserRepo,
		container.FxRate,
		opts...,
	)
	container.CapitalMovement = NewCapitalMovementService(
		repos.TxManager,
		repos.CapitalMovementRepo,
		repos.PartnerRepo,
		repos.JournalRepo,
		repos.UserRepo,
		container.FxRate,
		opts...,
	)

	container.Account = NewAccountService(repos.AccountRepo, opts...)
	container.Partner = NewPartnerService(repos.PartnerRepo, opts...)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, opts...)
	container.User = NewUserService(repos.UserRepo, opts...)
	container.Auth = NewAuthService(container.User, utils.TokenSettings{
		Secret: cfg.JWTSecret,
		Expiry: cfg.JWTExpiryDuration,
		Issuer: cfg.JWTIssuer,
	}, opts...)

	return container
}
