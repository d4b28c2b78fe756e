package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the kind of a personal account.
type AccountType string

const (
	Checking   AccountType = "CHECKING"
	Savings    AccountType = "SAVINGS"
	CreditLine AccountType = "CREDIT_LINE"
	OtherKind  AccountType = "OTHER"
)

// IsValid reports whether the value belongs to the closed set of account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Checking, Savings, CreditLine, OtherKind:
		return true
	}
	return false
}

// Account represents a personal financial account within the core domain.
// Balance is a cached value: it must always equal the initial balance plus
// the net effect of every transaction currently attached to the account.
// It is mutated only through the ledger's apply/reverse effects, never
// assigned directly, and accounts are never deleted.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (UUID)
	UserID      string          `json:"userID"`    // Resolved owner, supplied by the caller
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Description string          `json:"description"`
	Balance     decimal.Decimal `json:"balance"` // Cached running balance
	AuditFields
}
