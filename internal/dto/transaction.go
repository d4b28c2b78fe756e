package dto

import (
	"time"

	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to post a transaction.
// Amount carries no sign; direction comes from the transaction type.
type CreateTransactionRequest struct {
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=INCOME EXPENSE"`
	Category        domain.Category        `json:"category" binding:"required"`
	TransactionDate time.Time              `json:"transactionDate" binding:"required"`
	Description     string                 `json:"description"`
}

// UpdateTransactionRequest overwrites the mutable fields of a transaction.
// The owning account is not part of the request; it cannot be changed.
type UpdateTransactionRequest struct {
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=INCOME EXPENSE"`
	Category        domain.Category        `json:"category" binding:"required"`
	TransactionDate time.Time              `json:"transactionDate" binding:"required"`
	Description     string                 `json:"description"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	AccountID       string                 `json:"accountID"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Category        domain.Category        `json:"category"`
	CategoryName    string                 `json:"categoryName"`
	TransactionDate time.Time              `json:"transactionDate"`
	Description     string                 `json:"description"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ListTransactionsResponse is one page of transactions plus the cursor for
// the next page, nil when there is none.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		Amount:          txn.Amount,
		TransactionType: txn.TransactionType,
		Category:        txn.Category,
		CategoryName:    txn.Category.DisplayName(),
		TransactionDate: txn.TransactionDate,
		Description:     txn.Description,
		CreatedAt:       txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
