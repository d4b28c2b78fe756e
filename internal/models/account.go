package models

import (
	"github.com/shopspring/decimal"
)

// Account is the database representation of a personal account row.
type Account struct {
	AccountID   string          `db:"account_id"`
	UserID      string          `db:"user_id"`
	Name        string          `db:"name"`
	AccountType string          `db:"account_type"`
	Description string          `db:"description"`
	Balance     decimal.Decimal `db:"balance"` // Cached running balance
	AuditFields
}
