package dto

import (
	"github.com/SscSPs/budget_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseTotalQuery holds the query parameters of an expense total request.
type ExpenseTotalQuery struct {
	Currency   string  `form:"currency" binding:"required"`
	StartDate  string  `form:"startDate" binding:"required" example:"2024-01-01"`
	EndDate    string  `form:"endDate" binding:"required" example:"2024-01-31"`
	CategoryID *string `form:"categoryID"`
}

// SkippedExpenseResponse is an expense left out of a total because no rate was available.
type SkippedExpenseResponse struct {
	ExpenseID  string          `json:"expenseID"`
	CurrencyID string          `json:"currencyID"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string"`
	Reason     string          `json:"reason"`
}

// ExpenseTotalResponse reports a currency-normalised total. Complete is false when at least
// one expense was skipped, in which case Total is a lower bound.
type ExpenseTotalResponse struct {
	UserID        string                   `json:"userID"`
	CurrencyID    string                   `json:"currencyID"`
	StartDate     string                   `json:"startDate"`
	EndDate       string                   `json:"endDate"`
	CategoryID    *string                  `json:"categoryID,omitempty"`
	Total         decimal.Decimal          `json:"total" swaggertype:"string" example:"135.50"`
	IncludedCount int                      `json:"includedCount"`
	Complete      bool                     `json:"complete"`
	Skipped       []SkippedExpenseResponse `json:"skipped"`
}

// ToExpenseTotalResponse converts a domain.ExpenseTotal for the given query.
func ToExpenseTotalResponse(userID string, period domain.DateRange, categoryID *string, total *domain.ExpenseTotal) ExpenseTotalResponse {
	skipped := make([]SkippedExpenseResponse, len(total.Skipped))
	for i, s := range total.Skipped {
		skipped[i] = SkippedExpenseResponse{
			ExpenseID:  s.ExpenseID,
			CurrencyID: s.CurrencyID,
			Amount:     s.Amount,
			Reason:     string(s.Reason),
		}
	}
	return ExpenseTotalResponse{
		UserID:        userID,
		CurrencyID:    total.CurrencyID,
		StartDate:     period.Start.Format(domain.DateLayout),
		EndDate:       period.End.Format(domain.DateLayout),
		CategoryID:    categoryID,
		Total:         total.Total,
		IncludedCount: total.IncludedCount,
		Complete:      total.IsComplete(),
		Skipped:       skipped,
	}
}
