package repositories

// RepositoryContainer bundles the repository facades for wiring services.
type RepositoryContainer struct {
	Account     AccountRepositoryFacade
	Transaction TransactionRepositoryFacade
	Budget      BudgetRepositoryFacade
}
