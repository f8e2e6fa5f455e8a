package memory

import (
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
)

// NewRepositoryProvider exposes store through the repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newCurrencyRepository(store),
		ExchangeRateRepo: newExchangeRateRepository(store),
		ExpenseRepo:      newExpenseRepository(store),
		BudgetRepo:       newBudgetRepository(store),
		Close:            func() {},
	}
}
