package repositories

import (
	"context"

	"github.com/SscSPs/budget_engine/internal/core/domain"
)

// BudgetReader returns a budget by id, or an error matching apperrors.ErrNotFound.
type BudgetReader interface {
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
}
