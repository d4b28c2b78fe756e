package services

import (
	"context"
	"time"

	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	"github.com/projectfinanceai/finance_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionAggregator exposes the read-side aggregates other services
// consume. The budget service looks up category spend through this interface
// rather than reaching into the transaction store directly.
type TransactionAggregator interface {
	// SumExpensesByCategoryForMonth totals a user's EXPENSE amounts for one
	// category and calendar month.
	SumExpensesByCategoryForMonth(ctx context.Context, userID string, category domain.Category, month domain.BudgetMonth) (decimal.Decimal, error)

	// TotalsForPeriod sums a user's income and expenses over the inclusive
	// [from, to] date range.
	TotalsForPeriod(ctx context.Context, userID string, from, to time.Time) (domain.PeriodTotals, error)

	// SpendingByCategoryForMonth returns per-category expense totals for a
	// user and month, non-zero categories only, canonical category order.
	SpendingByCategoryForMonth(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.CategorySpend, error)
}

// TransactionSvcFacade defines the transaction operations exposed to callers.
type TransactionSvcFacade interface {
	TransactionAggregator

	// CreateTransaction posts a new transaction against the account and
	// applies its effect to the account balance, atomically.
	CreateTransaction(ctx context.Context, accountID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// GetTransactionByID retrieves a transaction owned by the user.
	GetTransactionByID(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)

	// ListTransactionsByAccount lists an account's transactions newest first
	// (transaction date desc, creation time desc) with cursor pagination.
	ListTransactionsByAccount(ctx context.Context, accountID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListRecentTransactionsByUser lists the user's most recent transactions
	// across all accounts.
	ListRecentTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)

	// UpdateTransaction overwrites the mutable fields of the transaction and
	// re-derives the account balance by reversing the old effect then
	// applying the new one. The owning account cannot be changed.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction reverses the transaction's effect and removes it.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}
