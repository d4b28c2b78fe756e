package repositories

import (
	"context"

	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudgetByID retrieves a specific budget by its identifier.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgetsByUserAndMonth retrieves a user's budgets for one month.
	ListBudgetsByUserAndMonth(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.Budget, error)

	// ListBudgetsByUser retrieves all of a user's budgets, newest month first.
	ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error)

	// ExistsByUserCategoryMonth reports whether a budget already exists for
	// the (user, category, month) triple.
	ExistsByUserCategoryMonth(ctx context.Context, userID string, category domain.Category, month domain.BudgetMonth) (bool, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudgetAmount updates the limit amount of an existing budget.
	// Category and month are immutable and never written here.
	UpdateBudgetAmount(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, budgetID string) error
}

// BudgetRepositoryFacade combines all budget repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
