package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByUser retrieves all accounts owned by a user, name ascending.
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountDetails updates name/description of an existing account.
	// The balance column is never written through this method.
	UpdateAccountDetails(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines operations that support the atomic
// transaction+balance units. Both must be called inside a DB transaction.
type AccountTransactionSupport interface {
	// FindAccountForUpdate selects the account row and locks it for update.
	// This is the per-account serialization point for balance mutations.
	FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// SetAccountBalanceInTx writes the recomputed balance for a locked account.
	SetAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
