package dto

import (
	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategorySpendResponse is one category's expense total for the month.
type CategorySpendResponse struct {
	Category     domain.Category `json:"category"`
	CategoryName string          `json:"categoryName"`
	Spent        decimal.Decimal `json:"spent"`
}

// DashboardOverviewResponse aggregates a user's position for one month.
type DashboardOverviewResponse struct {
	Accounts           []AccountResponse       `json:"accounts"`
	NetWorth           decimal.Decimal         `json:"netWorth"`
	MonthlyIncome      decimal.Decimal         `json:"monthlyIncome"`
	MonthlyExpenses    decimal.Decimal         `json:"monthlyExpenses"`
	MonthlyNet         decimal.Decimal         `json:"monthlyNet"`
	BudgetSummaries    []BudgetSummaryResponse `json:"budgetSummaries"`
	CategorySpending   []CategorySpendResponse `json:"categorySpending"`
	RecentTransactions []TransactionResponse   `json:"recentTransactions"`
}

// ToDashboardOverviewResponse converts the domain overview
func ToDashboardOverviewResponse(o *domain.DashboardOverview) DashboardOverviewResponse {
	spending := make([]CategorySpendResponse, len(o.CategorySpending))
	for i, cs := range o.CategorySpending {
		spending[i] = CategorySpendResponse{
			Category:     cs.Category,
			CategoryName: cs.Category.DisplayName(),
			Spent:        cs.Spent,
		}
	}
	return DashboardOverviewResponse{
		Accounts:           ToListAccountResponse(o.Accounts),
		NetWorth:           o.NetWorth,
		MonthlyIncome:      o.MonthlyIncome,
		MonthlyExpenses:    o.MonthlyExpenses,
		MonthlyNet:         o.MonthlyNet,
		BudgetSummaries:    ToBudgetSummaryResponses(o.BudgetSummaries),
		CategorySpending:   spending,
		RecentTransactions: ToTransactionResponses(o.RecentTransactions),
	}
}
