package repositories

import (
	"context"

	"github.com/SscSPs/budget_engine/internal/core/domain"
)

// ExpenseReader returns the expenses matching a filter. The date range is inclusive on
// both ends and the category restriction applies only when set.
type ExpenseReader interface {
	FindExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error)
}
