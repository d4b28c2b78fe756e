package accounting

import (
	"fmt"

	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyEffect returns the balance after posting a transaction's monetary
// effect: INCOME adds the amount, EXPENSE subtracts it. Pure function; used
// in both services and repositories so the ledger arithmetic lives in exactly
// one place.
func ApplyEffect(balance decimal.Decimal, amount decimal.Decimal, txnType domain.TransactionType) (decimal.Decimal, error) {
	switch txnType {
	case domain.Income:
		return balance.Add(amount), nil
	case domain.Expense:
		return balance.Sub(amount), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type %q", txnType)
	}
}

// ReverseEffect undoes ApplyEffect for the same amount and type:
// ReverseEffect(ApplyEffect(b, amt, t), amt, t) == b.
func ReverseEffect(balance decimal.Decimal, amount decimal.Decimal, txnType domain.TransactionType) (decimal.Decimal, error) {
	switch txnType {
	case domain.Income:
		return balance.Sub(amount), nil
	case domain.Expense:
		return balance.Add(amount), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type %q", txnType)
	}
}

// ReplayEffect computes the balance after reversing one posting and applying
// another, in that order. Update-in-place is always reverse-then-apply, never
// collapsed into a single signed delta, so the sequencing survives should a
// future transaction type introduce a non-commutative effect.
func ReplayEffect(balance decimal.Decimal, previous domain.Transaction, next domain.Transaction) (decimal.Decimal, error) {
	reversed, err := ReverseEffect(balance, previous.Amount, previous.TransactionType)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reversing previous effect of transaction %s: %w", previous.TransactionID, err)
	}
	applied, err := ApplyEffect(reversed, next.Amount, next.TransactionType)
	if err != nil {
		return decimal.Zero, fmt.Errorf("applying new effect of transaction %s: %w", next.TransactionID, err)
	}
	return applied, nil
}

// ValidateAmount checks the core invariant that transaction amounts are
// strictly positive.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transaction amount must be positive, got %s", amount.String())
	}
	return nil
}
