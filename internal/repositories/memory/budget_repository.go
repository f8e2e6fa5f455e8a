package memory

import (
	"context"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
)

type budgetRepository struct {
	store *Store
}

func newBudgetRepository(store *Store) portsrepo.BudgetReader {
	return &budgetRepository{store: store}
}

var _ portsrepo.BudgetReader = (*budgetRepository)(nil)

func (r *budgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	b, ok := r.store.budgets[budgetID]
	if !ok {
		return nil, apperrors.NewNotFoundError("budget " + budgetID + " not found")
	}
	return &b, nil
}
