package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/projectfinanceai/finance_tracker_app/internal/apperrors"
	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/repositories"
	"github.com/projectfinanceai/finance_tracker_app/internal/models"
	"github.com/projectfinanceai/finance_tracker_app/internal/utils/mapping"
)

// PgxBudgetRepository persists budgets in PostgreSQL.
type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBudgetRepository implements the facade
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const uniqueViolationCode = "23505"

const budgetColumns = `budget_id, user_id, category, budget_month, amount, created_at, created_by, last_updated_at, last_updated_by`

func scanBudget(row pgx.Row) (*models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&m.Category,
		&m.BudgetMonth,
		&m.Amount,
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

// SaveBudget persists a new budget. The unique index on
// (user_id, category, budget_month) backstops the service-level existence
// check, so a racing duplicate insert surfaces as a conflict rather than a
// second row.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID,
		m.UserID,
		m.Category,
		m.BudgetMonth,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to insert budget "+m.BudgetID, err)
	}
	return nil
}

// FindBudgetByID retrieves a budget by its ID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`
	m, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find budget by ID "+budgetID, err)
	}
	budget := mapping.ToDomainBudget(*m)
	return &budget, nil
}

// ListBudgetsByUserAndMonth retrieves a user's budgets for one month in
// canonical category order.
func (r *PgxBudgetRepository) ListBudgetsByUserAndMonth(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND budget_month = $2;
	`
	return r.queryBudgets(ctx, query, userID, month.Start())
}

// ListBudgetsByUser retrieves all of a user's budgets, newest month first.
func (r *PgxBudgetRepository) ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1
		ORDER BY budget_month DESC;
	`
	return r.queryBudgets(ctx, query, userID)
}

func (r *PgxBudgetRepository) queryBudgets(ctx context.Context, query string, args ...interface{}) ([]domain.Budget, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budgets", err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget row", err)
		}
		budgets = append(budgets, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating budget rows", err)
	}

	return mapping.ToDomainBudgetSlice(budgets), nil
}

// ExistsByUserCategoryMonth reports whether a budget already exists for the
// (user, category, month) triple.
func (r *PgxBudgetRepository) ExistsByUserCategoryMonth(ctx context.Context, userID string, category domain.Category, month domain.BudgetMonth) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM budgets
			WHERE user_id = $1 AND category = $2 AND budget_month = $3
		);
	`
	var exists bool
	err := r.Pool.QueryRow(ctx, query, userID, string(category), month.Start()).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check budget existence for user "+userID, err)
	}
	return exists, nil
}

// UpdateBudgetAmount updates the limit amount of an existing budget.
func (r *PgxBudgetRepository) UpdateBudgetAmount(ctx context.Context, budget domain.Budget) error {
	query := `
		UPDATE budgets
		SET amount = $2, last_updated_at = $3, last_updated_by = $4
		WHERE budget_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, budget.BudgetID, budget.Amount, budget.LastUpdatedAt, budget.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update budget "+budget.BudgetID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudget removes a budget.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, budgetID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete budget "+budgetID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
