package domain_test

import (
	"testing"

	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategoryPartition(t *testing.T) {
	for _, c := range domain.IncomeCategories() {
		assert.True(t, c.IsIncome(), "%s should be income", c)
		assert.False(t, c.IsExpense(), "%s should not be expense", c)
		assert.True(t, c.MatchesType(domain.Income))
		assert.False(t, c.MatchesType(domain.Expense))
	}
	for _, c := range domain.ExpenseCategories() {
		assert.True(t, c.IsExpense(), "%s should be expense", c)
		assert.False(t, c.IsIncome(), "%s should not be income", c)
		assert.True(t, c.MatchesType(domain.Expense))
		assert.False(t, c.MatchesType(domain.Income))
	}
}

func TestCategoryIsValid(t *testing.T) {
	assert.True(t, domain.Groceries.IsValid())
	assert.True(t, domain.Salary.IsValid())
	assert.False(t, domain.Category("LOTTERY").IsValid())
}

func TestCategoryOrdinalFollowsEnumerationOrder(t *testing.T) {
	all := append(domain.IncomeCategories(), domain.ExpenseCategories()...)
	for i, c := range all {
		assert.Equal(t, i, c.Ordinal(), "ordinal of %s", c)
	}
	assert.Equal(t, len(all), domain.Category("LOTTERY").Ordinal(), "unknown categories sort last")
}

func TestCategoryDisplayName(t *testing.T) {
	assert.Equal(t, "Dining Out", domain.Dining.DisplayName())
	assert.Equal(t, "Other Income", domain.OtherIncome.DisplayName())
	assert.Equal(t, "LOTTERY", domain.Category("LOTTERY").DisplayName())
}
