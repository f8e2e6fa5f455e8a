package memory

import (
	"context"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
)

type expenseRepository struct {
	store *Store
}

func newExpenseRepository(store *Store) portsrepo.ExpenseReader {
	return &expenseRepository{store: store}
}

var _ portsrepo.ExpenseReader = (*expenseRepository)(nil)

func (r *expenseRepository) FindExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]domain.Expense, 0)
	for _, e := range r.store.expenses {
		if filter.Matches(e) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}
