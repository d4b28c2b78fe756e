package repositories

import (
	"context"
	"time"

	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data. All reads
// are side-effect-free and reflect previously committed writes.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves a page of transactions for one
	// account ordered by transaction_date desc, created_at desc, using
	// token-based pagination. Returns the page and the next-page token.
	ListTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListRecentTransactionsByUser retrieves the most recent transactions
	// across all of the user's accounts.
	ListRecentTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)

	// SumExpensesByCategoryAndMonth totals EXPENSE transaction amounts for a
	// user, category and calendar month. Zero when there are none.
	SumExpensesByCategoryAndMonth(ctx context.Context, userID string, category domain.Category, month domain.BudgetMonth) (decimal.Decimal, error)

	// SumAmountByTypeForPeriod totals transaction amounts of one type for a
	// user across the inclusive [from, to] date range.
	SumAmountByTypeForPeriod(ctx context.Context, userID string, txnType domain.TransactionType, from, to time.Time) (decimal.Decimal, error)

	// SpendingByCategoryForMonth totals EXPENSE amounts per category for a
	// user and month, one row per category with non-zero spend.
	SpendingByCategoryForMonth(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.CategorySpend, error)
}

// TransactionWriter defines the three mutations. Each executes as a single
// atomic unit spanning the transaction-record write and the owning account's
// balance write; a failure rolls back both.
type TransactionWriter interface {
	// SaveTransaction inserts the transaction and applies its effect to the
	// owning account's balance.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites the mutable fields of an existing
	// transaction and recomputes the balance by reversing the stored
	// effect then applying the new one, in that order, on the locked
	// account. The previous snapshot is advisory; implementations must
	// re-read the record inside the atomic unit so that concurrent
	// mutations of the same transaction serialize rather than both
	// reversing a stale effect.
	UpdateTransaction(ctx context.Context, next domain.Transaction, previous domain.Transaction) error

	// DeleteTransaction reverses the transaction's stored effect on the
	// account balance and removes the record. The caller's snapshot is
	// advisory, as with UpdateTransaction.
	DeleteTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
