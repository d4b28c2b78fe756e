package dto

import (
	"github.com/projectfinanceai/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
// BudgetMonth uses the "YYYY-MM" form; the service parses and validates it.
type CreateBudgetRequest struct {
	Category    domain.Category `json:"category" binding:"required"`
	BudgetMonth string          `json:"budgetMonth" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateBudgetRequest carries the new limit amount. Any category or month in
// the request body is ignored; those fields are immutable after creation.
type UpdateBudgetRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID     string          `json:"budgetID"`
	Category     domain.Category `json:"category"`
	CategoryName string          `json:"categoryName"`
	BudgetMonth  string          `json:"budgetMonth"`
	Amount       decimal.Decimal `json:"amount"`
}

// BudgetSummaryResponse is the derived spend-vs-limit view for one budget.
type BudgetSummaryResponse struct {
	Budget       BudgetResponse  `json:"budget"`
	SpentAmount  decimal.Decimal `json:"spentAmount"`
	Remaining    decimal.Decimal `json:"remaining"`
	UsagePercent float64         `json:"usagePercent"`
	Exceeded     bool            `json:"exceeded"`
}

// CategoryResponse pairs a category value with its display name.
type CategoryResponse struct {
	Category    domain.Category `json:"category"`
	DisplayName string          `json:"displayName"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:     b.BudgetID,
		Category:     b.Category,
		CategoryName: b.Category.DisplayName(),
		BudgetMonth:  b.BudgetMonth.String(),
		Amount:       b.Amount,
	}
}

// ToBudgetResponses converts a slice of domain budgets
func ToBudgetResponses(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return res
}

// ToBudgetSummaryResponse converts a derived domain.BudgetSummary
func ToBudgetSummaryResponse(s *domain.BudgetSummary) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		Budget:       ToBudgetResponse(&s.Budget),
		SpentAmount:  s.SpentAmount,
		Remaining:    s.Remaining,
		UsagePercent: s.UsagePercent,
		Exceeded:     s.Exceeded,
	}
}

// ToBudgetSummaryResponses converts a slice of summaries
func ToBudgetSummaryResponses(summaries []domain.BudgetSummary) []BudgetSummaryResponse {
	res := make([]BudgetSummaryResponse, len(summaries))
	for i := range summaries {
		res[i] = ToBudgetSummaryResponse(&summaries[i])
	}
	return res
}

// ToCategoryResponses converts categories with their display names
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = CategoryResponse{Category: c, DisplayName: c.DisplayName()}
	}
	return res
}
