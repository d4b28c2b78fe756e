package pgsql

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/projectfinanceai/finance_tracker_app/internal/apperrors"
	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/repositories"
	"github.com/projectfinanceai/finance_tracker_app/internal/models"
	"github.com/projectfinanceai/finance_tracker_app/internal/utils/accounting"
	"github.com/projectfinanceai/finance_tracker_app/internal/utils/mapping"
	"github.com/projectfinanceai/finance_tracker_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// PgxTransactionRepository persists transactions in PostgreSQL. Every write
// method runs the transaction-record write and the owning account's balance
// write inside one database transaction, with the account row locked first,
// so partial application is impossible and per-account mutations serialize.
type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements the facade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, account_id, amount, transaction_type, category, transaction_date, description, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.Amount,
		&m.TransactionType,
		&m.Category,
		&m.TransactionDate,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTransaction inserts the transaction and applies its effect to the
// owning account's balance in one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	// Lock the account row first: this is the serialization point for all
	// balance mutations against this account.
	account, err := r.accountRepo.FindAccountForUpdate(ctx, tx, txn.AccountID)
	if err != nil {
		return err
	}

	m := mapping.ToModelTransaction(txn)
	insertQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.TransactionID,
		m.AccountID,
		m.Amount,
		m.TransactionType,
		m.Category,
		m.TransactionDate,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	newBalance, err := accounting.ApplyEffect(account.Balance, txn.Amount, txn.TransactionType)
	if err != nil {
		return apperrors.NewAppError(500, "failed to apply effect of transaction "+m.TransactionID, err)
	}
	if err := r.accountRepo.SetAccountBalanceInTx(ctx, tx, account.AccountID, newBalance, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// lockTransaction selects the transaction row and locks it with FOR UPDATE.
// Must be called within a transaction, after the account lock, so the lock
// order is identical across update and delete.
func (r *PgxTransactionRepository) lockTransaction(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`
	m, err := scanTransaction(tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock transaction "+transactionID+" for update", err)
	}
	txn := mapping.ToDomainTransaction(*m)
	return &txn, nil
}

// UpdateTransaction overwrites the mutable fields of the transaction and
// recomputes the account balance on the locked row by reversing the stored
// effect and then applying the new one, in that order. The previous snapshot
// the service read is advisory only: the effect that gets reversed is the one
// re-read from the locked row, so an update racing another update or a delete
// of the same transaction still lands on a balance some sequential ordering
// would produce.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, next domain.Transaction, previous domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	account, err := r.accountRepo.FindAccountForUpdate(ctx, tx, previous.AccountID)
	if err != nil {
		return err
	}

	stored, err := r.lockTransaction(ctx, tx, next.TransactionID)
	if err != nil {
		return err
	}

	newBalance, err := accounting.ReplayEffect(account.Balance, *stored, next)
	if err != nil {
		return apperrors.NewAppError(500, "failed to recompute balance for transaction "+next.TransactionID, err)
	}
	if err := r.accountRepo.SetAccountBalanceInTx(ctx, tx, account.AccountID, newBalance, next.LastUpdatedBy, next.LastUpdatedAt); err != nil {
		return err
	}

	updateQuery := `
		UPDATE transactions
		SET amount = $2, transaction_type = $3, category = $4, transaction_date = $5, description = $6, last_updated_at = $7, last_updated_by = $8
		WHERE transaction_id = $1;
	`
	ct, err := tx.Exec(ctx, updateQuery,
		next.TransactionID,
		next.Amount,
		string(next.TransactionType),
		string(next.Category),
		next.TransactionDate,
		next.Description,
		next.LastUpdatedAt,
		next.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+next.TransactionID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction reverses the transaction's effect on the account balance
// and removes the record, atomically. As with UpdateTransaction, the effect
// reversed is the one re-read from the locked row, not the caller's snapshot.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	account, err := r.accountRepo.FindAccountForUpdate(ctx, tx, txn.AccountID)
	if err != nil {
		return err
	}

	stored, err := r.lockTransaction(ctx, tx, txn.TransactionID)
	if err != nil {
		return err
	}

	newBalance, err := accounting.ReverseEffect(account.Balance, stored.Amount, stored.TransactionType)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reverse effect of transaction "+txn.TransactionID, err)
	}
	now := time.Now().UTC()
	if err := r.accountRepo.SetAccountBalanceInTx(ctx, tx, account.AccountID, newBalance, txn.LastUpdatedBy, now); err != nil {
		return err
	}

	ct, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, txn.TransactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+txn.TransactionID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}
	txn := mapping.ToDomainTransaction(*m)
	return &txn, nil
}

// ListTransactionsByAccount retrieves a page of transactions for an account
// using token-based pagination. Ordering is transaction_date desc with
// created_at desc as the tie-breaker, which the cursor tuple mirrors.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
	`
	orderByClause := `ORDER BY transaction_date DESC, created_at DESC`

	args := []interface{}{accountID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (transaction_date, created_at) < ($2, $3) `
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for account "+accountID, err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var token *string
	if len(transactions) > limit {
		transactions = transactions[:limit]
		last := transactions[len(transactions)-1]
		t := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainTransactionSlice(transactions), token, nil
}

// ListRecentTransactionsByUser retrieves the most recent transactions across
// all of the user's accounts.
func (r *PgxTransactionRepository) ListRecentTransactionsByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT t.transaction_id, t.account_id, t.amount, t.transaction_type, t.category, t.transaction_date, t.description, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
		FROM transactions t
		JOIN accounts a ON t.account_id = a.account_id
		WHERE a.user_id = $1
		ORDER BY t.transaction_date DESC, t.created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recent transactions for user "+userID, err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(transactions), nil
}

// SumExpensesByCategoryAndMonth totals EXPENSE amounts for one user, category
// and calendar month. COALESCE keeps empty months at zero.
func (r *PgxTransactionRepository) SumExpensesByCategoryAndMonth(ctx context.Context, userID string, category domain.Category, month domain.BudgetMonth) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM transactions t
		JOIN accounts a ON t.account_id = a.account_id
		WHERE a.user_id = $1
			AND t.transaction_type = 'EXPENSE'
			AND t.category = $2
			AND t.transaction_date >= $3
			AND t.transaction_date <= $4;
	`
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, userID, string(category), month.Start(), month.End()).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum category spending for user "+userID, err)
	}
	return total, nil
}

// SumAmountByTypeForPeriod totals amounts of one transaction type for a user
// over an inclusive date range.
func (r *PgxTransactionRepository) SumAmountByTypeForPeriod(ctx context.Context, userID string, txnType domain.TransactionType, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM transactions t
		JOIN accounts a ON t.account_id = a.account_id
		WHERE a.user_id = $1
			AND t.transaction_type = $2
			AND t.transaction_date >= $3
			AND t.transaction_date <= $4;
	`
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, userID, string(txnType), from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum "+string(txnType)+" amounts for user "+userID, err)
	}
	return total, nil
}

// SpendingByCategoryForMonth totals EXPENSE amounts per category for one
// user and month. Categories with no spend are omitted; results follow the
// canonical category order.
func (r *PgxTransactionRepository) SpendingByCategoryForMonth(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.CategorySpend, error) {
	query := `
		SELECT t.category, SUM(t.amount) AS spent
		FROM transactions t
		JOIN accounts a ON t.account_id = a.account_id
		WHERE a.user_id = $1
			AND t.transaction_type = 'EXPENSE'
			AND t.transaction_date >= $2
			AND t.transaction_date <= $3
		GROUP BY t.category;
	`
	rows, err := r.Pool.Query(ctx, query, userID, month.Start(), month.End())
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query category spending for user "+userID, err)
	}
	defer rows.Close()

	result := []domain.CategorySpend{}
	for rows.Next() {
		var category string
		var spent decimal.Decimal
		if err := rows.Scan(&category, &spent); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category spending row", err)
		}
		result = append(result, domain.CategorySpend{
			Category: domain.Category(category),
			Spent:    spent,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category spending rows", err)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Category.Ordinal() < result[j].Category.Ordinal()
	})
	return result, nil
}
