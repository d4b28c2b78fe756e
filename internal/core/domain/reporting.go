package domain

import (
	"github.com/shopspring/decimal"
)

// CategorySpend is one category's expense total for a period.
type CategorySpend struct {
	Category Category        `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
}

// PeriodTotals holds income and expense sums over a date range.
type PeriodTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Net returns income minus expenses for the period.
func (t PeriodTotals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// DashboardOverview aggregates a user's position for one month.
type DashboardOverview struct {
	Accounts           []Account       `json:"accounts"`
	NetWorth           decimal.Decimal `json:"netWorth"` // Sum of account balances
	MonthlyIncome      decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses    decimal.Decimal `json:"monthlyExpenses"`
	MonthlyNet         decimal.Decimal `json:"monthlyNet"`
	BudgetSummaries    []BudgetSummary `json:"budgetSummaries"`
	CategorySpending   []CategorySpend `json:"categorySpending"` // Non-zero expense categories, canonical order
	RecentTransactions []Transaction   `json:"recentTransactions"`
}
