package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the database representation of a budget row.
// BudgetMonth is stored as the first day of the month.
type Budget struct {
	BudgetID    string          `db:"budget_id"`
	UserID      string          `db:"user_id"`
	Category    string          `db:"category"`
	BudgetMonth time.Time       `db:"budget_month"`
	Amount      decimal.Decimal `db:"amount"`
	AuditFields
}
