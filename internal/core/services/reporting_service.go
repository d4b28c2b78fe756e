package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	portssvc "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// recentTransactionCount is how many ledger entries the dashboard shows.
const recentTransactionCount = 5

// topSpendingCategoryCount caps the dashboard's category spending breakdown
// at the heaviest spenders for the month.
const topSpendingCategoryCount = 5

// reportingService assembles the dashboard overview from the other services.
// It holds no repository of its own; every figure is derived from the same
// service surfaces the API exposes individually.
type reportingService struct {
	BaseService
	accountSvc     portssvc.AccountSvcFacade
	transactionSvc portssvc.TransactionSvcFacade
	budgetSvc      portssvc.BudgetSvcFacade
}

// NewReportingService creates a new reporting service
func NewReportingService(accountSvc portssvc.AccountSvcFacade, transactionSvc portssvc.TransactionSvcFacade, budgetSvc portssvc.BudgetSvcFacade) portssvc.ReportingService {
	return &reportingService{
		accountSvc:     accountSvc,
		transactionSvc: transactionSvc,
		budgetSvc:      budgetSvc,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) GetDashboardOverview(ctx context.Context, userID string, month domain.BudgetMonth) (*domain.DashboardOverview, error) {
	accounts, err := s.accountSvc.ListAccountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	netWorth := decimal.Zero
	for _, account := range accounts {
		netWorth = netWorth.Add(account.Balance)
	}

	totals, err := s.transactionSvc.TotalsForPeriod(ctx, userID, month.Start(), month.End())
	if err != nil {
		return nil, err
	}

	summaries, err := s.budgetSvc.GetBudgetSummaries(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	spending, err := s.transactionSvc.SpendingByCategoryForMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	spending = topSpendingCategories(spending, topSpendingCategoryCount)

	recent, err := s.transactionSvc.ListRecentTransactionsByUser(ctx, userID, recentTransactionCount)
	if err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Dashboard overview assembled",
		slog.String("user_id", userID),
		slog.String("month", month.String()),
		slog.Int("accounts", len(accounts)),
		slog.Int("budgets", len(summaries)))

	return &domain.DashboardOverview{
		Accounts:           accounts,
		NetWorth:           netWorth,
		MonthlyIncome:      totals.Income,
		MonthlyExpenses:    totals.Expense,
		MonthlyNet:         totals.Net(),
		BudgetSummaries:    summaries,
		CategorySpending:   spending,
		RecentTransactions: recent,
	}, nil
}

// topSpendingCategories keeps the n largest spends and restores the
// canonical category order for the survivors.
func topSpendingCategories(spending []domain.CategorySpend, n int) []domain.CategorySpend {
	if len(spending) <= n {
		return spending
	}
	sort.SliceStable(spending, func(i, j int) bool {
		return spending[i].Spent.GreaterThan(spending[j].Spent)
	})
	spending = spending[:n]
	sort.SliceStable(spending, func(i, j int) bool {
		return spending[i].Category.Ordinal() < spending[j].Category.Ordinal()
	})
	return spending
}
