package domain

// Category identifies what a transaction was for. The taxonomy is closed and
// partitioned into income and expense categories; budgets may only reference
// expense categories.
type Category string

const (
	// Income categories
	Salary      Category = "SALARY"
	Freelance   Category = "FREELANCE"
	Investment  Category = "INVESTMENT"
	Business    Category = "BUSINESS"
	Gift        Category = "GIFT"
	OtherIncome Category = "OTHER_INCOME"

	// Expense categories
	Groceries      Category = "GROCERIES"
	Dining         Category = "DINING"
	Transportation Category = "TRANSPORTATION"
	Housing        Category = "HOUSING"
	Utilities      Category = "UTILITIES"
	Healthcare     Category = "HEALTHCARE"
	Entertainment  Category = "ENTERTAINMENT"
	Shopping       Category = "SHOPPING"
	Education      Category = "EDUCATION"
	Travel         Category = "TRAVEL"
	OtherExpense   Category = "OTHER_EXPENSE"
)

// incomeCategories and expenseCategories fix the canonical enumeration order.
// "Category ascending" everywhere in the application means this order.
var incomeCategories = []Category{
	Salary, Freelance, Investment, Business, Gift, OtherIncome,
}

var expenseCategories = []Category{
	Groceries, Dining, Transportation, Housing, Utilities, Healthcare,
	Entertainment, Shopping, Education, Travel, OtherExpense,
}

var categoryDisplayNames = map[Category]string{
	Salary:         "Salary",
	Freelance:      "Freelance",
	Investment:     "Investment",
	Business:       "Business",
	Gift:           "Gift",
	OtherIncome:    "Other Income",
	Groceries:      "Groceries",
	Dining:         "Dining Out",
	Transportation: "Transportation",
	Housing:        "Housing",
	Utilities:      "Utilities",
	Healthcare:     "Healthcare",
	Entertainment:  "Entertainment",
	Shopping:       "Shopping",
	Education:      "Education",
	Travel:         "Travel",
	OtherExpense:   "Other Expense",
}

// IncomeCategories returns the income partition in canonical order.
func IncomeCategories() []Category {
	out := make([]Category, len(incomeCategories))
	copy(out, incomeCategories)
	return out
}

// ExpenseCategories returns the expense partition in canonical order.
func ExpenseCategories() []Category {
	out := make([]Category, len(expenseCategories))
	copy(out, expenseCategories)
	return out
}

// IsIncome reports whether the category belongs to the income partition.
func (c Category) IsIncome() bool {
	for _, ic := range incomeCategories {
		if c == ic {
			return true
		}
	}
	return false
}

// IsExpense reports whether the category belongs to the expense partition.
func (c Category) IsExpense() bool {
	for _, ec := range expenseCategories {
		if c == ec {
			return true
		}
	}
	return false
}

// IsValid reports whether the value belongs to the taxonomy at all.
func (c Category) IsValid() bool {
	return c.IsIncome() || c.IsExpense()
}

// MatchesType reports whether the category is usable with the given
// transaction type: income categories with INCOME, expense categories with
// EXPENSE.
func (c Category) MatchesType(t TransactionType) bool {
	switch t {
	case Income:
		return c.IsIncome()
	case Expense:
		return c.IsExpense()
	}
	return false
}

// DisplayName returns the human-readable name for the category, or the raw
// value for anything outside the taxonomy.
func (c Category) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

// Ordinal returns the position of the category in the canonical enumeration
// (income partition first). Unknown categories sort last.
func (c Category) Ordinal() int {
	for i, ic := range incomeCategories {
		if c == ic {
			return i
		}
	}
	for i, ec := range expenseCategories {
		if c == ec {
			return len(incomeCategories) + i
		}
	}
	return len(incomeCategories) + len(expenseCategories)
}
