package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/projectfinanceai/finance_tracker_app/internal/apperrors"
	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/services"
	"github.com/projectfinanceai/finance_tracker_app/internal/dto"
	"github.com/projectfinanceai/finance_tracker_app/internal/utils/accounting"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	aggregator portssvc.TransactionAggregator
}

// NewBudgetService creates a new budget service. Spend lookups go through
// the transaction aggregator so summaries always reflect the live ledger.
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade, aggregator portssvc.TransactionAggregator) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo: repo,
		aggregator: aggregator,
	}
}

// Ensure budgetService implements the BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error) {
	if userID == "" {
		err := apperrors.NewAppError(400, "owner is required to create a budget", apperrors.ErrValidation)
		s.LogError(ctx, err, "Missing owner on budget creation")
		return nil, err
	}
	if !req.Category.IsExpense() {
		err := apperrors.NewAppError(400, "budgets are limited to expense categories, got: "+string(req.Category), apperrors.ErrValidation)
		s.LogError(ctx, err, "Invalid budget category", slog.String("category", string(req.Category)))
		return nil, err
	}
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		appErr := apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
		s.LogError(ctx, appErr, "Invalid budget amount")
		return nil, appErr
	}
	month, err := domain.ParseBudgetMonth(req.BudgetMonth)
	if err != nil {
		appErr := apperrors.NewAppError(400, "invalid budget month: "+req.BudgetMonth, apperrors.ErrValidation)
		s.LogError(ctx, appErr, "Invalid budget month", slog.String("budget_month", req.BudgetMonth))
		return nil, appErr
	}

	exists, err := s.budgetRepo.ExistsByUserCategoryMonth(ctx, userID, req.Category, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for existing budget",
			slog.String("user_id", userID),
			slog.String("category", string(req.Category)))
		return nil, err
	}
	if exists {
		err := apperrors.NewAppError(409, "budget already exists for "+string(req.Category)+" in "+month.String(), apperrors.ErrConflict)
		s.LogError(ctx, err, "Duplicate budget rejected",
			slog.String("user_id", userID),
			slog.String("category", string(req.Category)),
			slog.String("month", month.String()))
		return nil, err
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		UserID:      userID,
		Category:    req.Category,
		BudgetMonth: month,
		Amount:      req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// The unique index on (user, category, month) catches the race where two
	// identical creates pass the existence check together.
	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget",
			slog.String("budget_id", budget.BudgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created successfully",
		slog.String("budget_id", budget.BudgetID),
		slog.String("category", string(budget.Category)),
		slog.String("month", month.String()))
	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string, userID string) (*domain.Budget, error) {
	if budgetID == "" {
		err := apperrors.NewAppError(400, "budget ID is required", apperrors.ErrValidation)
		s.LogError(ctx, err, "Missing budget ID")
		return nil, err
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget by ID",
				slog.String("budget_id", budgetID))
		}
		return nil, err
	}

	if budget.UserID != userID {
		s.LogDebug(ctx, "Budget found but owned by a different user",
			slog.String("budget_id", budgetID),
			slog.String("requesting_user", userID))
		return nil, apperrors.ErrNotFound
	}

	return budget, nil
}

func (s *budgetService) ListBudgetsByUserAndMonth(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUserAndMonth(ctx, userID, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets for month",
			slog.String("user_id", userID),
			slog.String("month", month.String()))
		return nil, err
	}
	if budgets == nil {
		budgets = []domain.Budget{}
	}
	sortBudgetsByCategory(budgets)
	return budgets, nil
}

func (s *budgetService) ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets",
			slog.String("user_id", userID))
		return nil, err
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	// Newest month first; within a month budgets follow the canonical
	// category order so the listing is stable across reads.
	sort.SliceStable(budgets, func(i, j int) bool {
		if budgets[i].BudgetMonth != budgets[j].BudgetMonth {
			mi, mj := budgets[i].BudgetMonth, budgets[j].BudgetMonth
			if mi.Year != mj.Year {
				return mi.Year > mj.Year
			}
			return mi.Month > mj.Month
		}
		return budgets[i].Category.Ordinal() < budgets[j].Category.Ordinal()
	})
	return budgets, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error) {
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		appErr := apperrors.NewAppError(400, err.Error(), apperrors.ErrValidation)
		s.LogError(ctx, appErr, "Invalid budget amount on update",
			slog.String("budget_id", budgetID))
		return nil, appErr
	}

	budget, err := s.GetBudgetByID(ctx, budgetID, userID)
	if err != nil {
		return nil, err
	}

	// Only the limit moves. Category and month are identity and stay fixed
	// for the budget's lifetime.
	now := time.Now()
	budget.Amount = req.Amount
	budget.LastUpdatedAt = now
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudgetAmount(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget",
			slog.String("budget_id", budgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget updated successfully",
		slog.String("budget_id", budgetID))
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string, userID string) error {
	if _, err := s.GetBudgetByID(ctx, budgetID, userID); err != nil {
		return err
	}

	// Deleting a budget removes the limit only; the transactions it was
	// measured against are untouched.
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget",
			slog.String("budget_id", budgetID))
		return err
	}

	s.LogInfo(ctx, "Budget deleted successfully",
		slog.String("budget_id", budgetID))
	return nil
}

func (s *budgetService) GetBudgetSummaries(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.BudgetSummary, error) {
	budgets, err := s.ListBudgetsByUserAndMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.BudgetSummary, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.aggregator.SumExpensesByCategoryForMonth(ctx, userID, budget.Category, month)
		if err != nil {
			s.LogError(ctx, err, "Failed to derive spend for budget",
				slog.String("budget_id", budget.BudgetID),
				slog.String("category", string(budget.Category)))
			return nil, err
		}
		summaries = append(summaries, domain.NewBudgetSummary(budget, spent))
	}

	return summaries, nil
}

func (s *budgetService) GetAvailableCategories(ctx context.Context, userID string, month domain.BudgetMonth) ([]domain.Category, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUserAndMonth(ctx, userID, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets for available categories",
			slog.String("user_id", userID),
			slog.String("month", month.String()))
		return nil, err
	}

	taken := make(map[domain.Category]struct{}, len(budgets))
	for _, budget := range budgets {
		taken[budget.Category] = struct{}{}
	}

	available := []domain.Category{}
	for _, category := range domain.ExpenseCategories() {
		if _, ok := taken[category]; !ok {
			available = append(available, category)
		}
	}
	return available, nil
}

func sortBudgetsByCategory(budgets []domain.Budget) {
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].Category.Ordinal() < budgets[j].Category.Ordinal()
	})
}
