package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetMonth is a calendar year+month pair, the period a budget covers.
type BudgetMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// ParseBudgetMonth parses the "YYYY-MM" form used on the wire and in storage.
func ParseBudgetMonth(s string) (BudgetMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return BudgetMonth{}, fmt.Errorf("invalid budget month %q: %w", s, err)
	}
	return BudgetMonth{Year: t.Year(), Month: t.Month()}, nil
}

// BudgetMonthOf returns the month containing the given time.
func BudgetMonthOf(t time.Time) BudgetMonth {
	return BudgetMonth{Year: t.Year(), Month: t.Month()}
}

// CurrentBudgetMonth returns the month containing the current time.
func CurrentBudgetMonth() BudgetMonth {
	return BudgetMonthOf(time.Now())
}

// String formats the month as "YYYY-MM".
func (m BudgetMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start returns the first day of the month in UTC.
func (m BudgetMonth) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the final instant of the month in UTC, so an inclusive
// [Start, End] range covers every timestamp inside the month.
func (m BudgetMonth) End() time.Time {
	return m.Start().AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// Contains reports whether the given date falls inside the month.
func (m BudgetMonth) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// IsZero reports whether the month is unset.
func (m BudgetMonth) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Budget represents a monthly spending limit for one expense category.
// At most one budget may exist per (user, category, month); the category and
// month are immutable after creation, only the limit amount may change.
type Budget struct {
	BudgetID    string          `json:"budgetID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`   // Resolved owner
	Category    Category        `json:"category"` // Expense category only
	BudgetMonth BudgetMonth     `json:"budgetMonth"`
	Amount      decimal.Decimal `json:"amount"` // Limit, strictly positive
	AuditFields
}

// BudgetSummary is the derived spend-vs-limit view of one budget. It is
// recomputed on every read and never persisted.
type BudgetSummary struct {
	Budget       Budget          `json:"budget"`
	SpentAmount  decimal.Decimal `json:"spentAmount"`
	Remaining    decimal.Decimal `json:"remaining"`    // Limit minus spent, may be negative
	UsagePercent float64         `json:"usagePercent"` // spent/limit*100, 0 when limit is 0
	Exceeded     bool            `json:"exceeded"`     // spent > limit
}

// NewBudgetSummary derives the summary for a budget given the spent amount.
func NewBudgetSummary(budget Budget, spent decimal.Decimal) BudgetSummary {
	summary := BudgetSummary{
		Budget:      budget,
		SpentAmount: spent,
		Remaining:   budget.Amount.Sub(spent),
		Exceeded:    spent.GreaterThan(budget.Amount),
	}
	if budget.Amount.IsPositive() {
		summary.UsagePercent, _ = spent.Div(budget.Amount).Mul(decimal.NewFromInt(100)).Float64()
	}
	return summary
}
