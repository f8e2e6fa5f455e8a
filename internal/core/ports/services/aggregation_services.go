package services

import (
	"context"
	"time"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseQuery selects a user's expenses to be summed into TargetCurrencyID.
type ExpenseQuery struct {
	UserID           string
	TargetCurrencyID string
	Range            domain.DateRange
	CategoryID       *string
}

// ExpenseAggregatorSvc computes currency-normalised expense totals.
// Expenses whose currency has no rate into the target are left out of the total.
type ExpenseAggregatorSvc interface {
	// TotalExpenses sums every expense of the user dated within [start, end].
	TotalExpenses(ctx context.Context, userID, targetCurrencyID string, start, end time.Time) (decimal.Decimal, error)

	// ExpenseTotals returns the total together with the expenses that were skipped.
	ExpenseTotals(ctx context.Context, query ExpenseQuery) (*domain.ExpenseTotal, error)
}

// BudgetTrackerSvc derives consumption metrics for a budget.
type BudgetTrackerSvc interface {
	// CurrentBudgetUsage fails with apperrors.ErrNotFound for an unknown budget.
	CurrentBudgetUsage(ctx context.Context, budgetID string) (decimal.Decimal, error)

	// PercentageConsumed fails with apperrors.ErrNotFound for an unknown budget.
	PercentageConsumed(ctx context.Context, budgetID string) (decimal.Decimal, error)

	// IsAlertTriggered returns false, not an error, for an unknown budget.
	IsAlertTriggered(ctx context.Context, budgetID string) (bool, error)

	// BudgetStatus returns usage, percentage and alert state from a single read.
	BudgetStatus(ctx context.Context, budgetID string) (*domain.BudgetStatus, error)
}

// AggregationSvcFacade combines the aggregation engine interfaces.
type AggregationSvcFacade interface {
	ExpenseAggregatorSvc
	BudgetTrackerSvc
}
