package services

import (
	portsrepo "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryContainer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Account service first; transaction ownership checks run through it.
	container.Account = NewAccountService(repos.Account)
	container.Transaction = NewTransactionService(repos.Transaction, container.Account)
	container.Budget = NewBudgetService(repos.Budget, container.Transaction)
	container.Reporting = NewReportingService(container.Account, container.Transaction, container.Budget)

	return container
}
