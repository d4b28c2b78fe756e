package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/repositories"
)

func NewRepositoryContainer(dbPool *pgxpool.Pool) portsrepo.RepositoryContainer {
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	budgetRepo := newPgxBudgetRepository(dbPool)

	return portsrepo.RepositoryContainer{
		Account:     accountRepo,
		Transaction: transactionRepo,
		Budget:      budgetRepo,
	}
}
