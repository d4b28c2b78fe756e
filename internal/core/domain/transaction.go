package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds money to its account
// or removes money from it. Direction is carried by the type; amounts are
// always strictly positive.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// IsValid reports whether the value is one of the two transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction represents a single posting against exactly one account.
// Creating, updating or deleting a transaction is always paired with one
// balance mutation on the owning account, committed in the same atomic unit.
// The owning account reference is immutable after creation.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	AccountID       string          `json:"accountID"`     // FK -> Account.accountID (Not Null)
	Amount          decimal.Decimal `json:"amount"`        // Strictly positive
	TransactionType TransactionType `json:"transactionType"`
	Category        Category        `json:"category"`
	TransactionDate time.Time       `json:"transactionDate"` // Occurrence date
	Description     string          `json:"description"`
	AuditFields
}
