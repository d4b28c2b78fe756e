package services

import (
	"context"

	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	"github.com/projectfinanceai/finance_tracker_app/internal/dto"
)

// BudgetSvcFacade defines the budget operations exposed to callers.
type BudgetSvcFacade interface {
	// CreateBudget creates a budget for an expense category and month.
	// Fails with a conflict if the (user, category, month) triple is taken.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error)

	// GetBudgetByID retrieves a budget owned by the user.
	GetBudgetByID(ctx context.Context, budgetID string, userID string) (*domain.Budget, error)

	// ListBudgetsByUserAndMonth lists the user's budgets for a month,
	// category ascending (canonical enumeration order).
	ListBudgetsByUserAndMonth(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.Budget, error)

	// ListBudgetsByUser lists all of the user's budgets, newest month first.
	ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error)

	// UpdateBudget updates the limit amount. Category and month on the
	// incoming value are ignored, not rejected.
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error)

	// DeleteBudget removes a budget. Transactions are unaffected.
	DeleteBudget(ctx context.Context, budgetID string, userID string) error

	// GetBudgetSummaries derives spend-vs-limit summaries for every budget
	// the user holds in the month, category ascending.
	GetBudgetSummaries(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.BudgetSummary, error)

	// GetAvailableCategories returns the expense categories not yet budgeted
	// by the user for the month, canonical order.
	GetAvailableCategories(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.Category, error)
}
