package accounting_test

import (
	"testing"

	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	"github.com/projectfinanceai/finance_tracker_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestApplyEffect(t *testing.T) {
	balance := dec("1000.00")

	got, err := accounting.ApplyEffect(balance, dec("200.00"), domain.Income)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("1200.00")), "income adds: got %s", got)

	got, err = accounting.ApplyEffect(balance, dec("50.00"), domain.Expense)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("950.00")), "expense subtracts: got %s", got)

	_, err = accounting.ApplyEffect(balance, dec("1"), domain.TransactionType("TRANSFER"))
	assert.Error(t, err)
}

func TestReverseEffectIsInverseOfApply(t *testing.T) {
	cases := []struct {
		balance string
		amount  string
		txnType domain.TransactionType
	}{
		{"0", "0.01", domain.Income},
		{"1000.00", "200.00", domain.Income},
		{"1000.00", "200.00", domain.Expense},
		{"-50.25", "999999999.99", domain.Expense},
		{"123.456789", "0.000001", domain.Income},
	}

	for _, tc := range cases {
		applied, err := accounting.ApplyEffect(dec(tc.balance), dec(tc.amount), tc.txnType)
		require.NoError(t, err)
		reversed, err := accounting.ReverseEffect(applied, dec(tc.amount), tc.txnType)
		require.NoError(t, err)
		assert.True(t, reversed.Equal(dec(tc.balance)),
			"reverse(apply(%s, %s, %s)) = %s", tc.balance, tc.amount, tc.txnType, reversed)
	}
}

func TestReplayEffect(t *testing.T) {
	previous := domain.Transaction{
		TransactionID:   "txn-1",
		Amount:          dec("200.00"),
		TransactionType: domain.Income,
	}
	next := domain.Transaction{
		TransactionID:   "txn-1",
		Amount:          dec("50.00"),
		TransactionType: domain.Expense,
	}

	// 1200 - 200 (reverse income) - 50 (apply expense) = 950
	got, err := accounting.ReplayEffect(dec("1200.00"), previous, next)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("950.00")), "got %s", got)
}

func TestReplayEffectIdenticalValuesIsNetZero(t *testing.T) {
	txn := domain.Transaction{
		TransactionID:   "txn-1",
		Amount:          dec("75.30"),
		TransactionType: domain.Expense,
	}

	got, err := accounting.ReplayEffect(dec("412.19"), txn, txn)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("412.19")), "got %s", got)
}

func TestNoDriftAcrossRepeatedApplyReverse(t *testing.T) {
	balance := dec("0.00")
	amount := dec("0.10") // classic float troublemaker
	var err error

	for i := 0; i < 1000; i++ {
		balance, err = accounting.ApplyEffect(balance, amount, domain.Income)
		require.NoError(t, err)
	}
	assert.True(t, balance.Equal(dec("100.00")), "after 1000 adds: %s", balance)

	for i := 0; i < 1000; i++ {
		balance, err = accounting.ReverseEffect(balance, amount, domain.Income)
		require.NoError(t, err)
	}
	assert.True(t, balance.IsZero(), "after 1000 reversals: %s", balance)
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, accounting.ValidateAmount(dec("0.01")))
	assert.Error(t, accounting.ValidateAmount(dec("0")))
	assert.Error(t, accounting.ValidateAmount(dec("-5.00")))
}
