package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of a transaction row.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType string          `db:"transaction_type"`
	Category        string          `db:"category"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	AuditFields
}
