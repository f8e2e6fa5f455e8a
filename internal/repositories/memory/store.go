// Package memory keeps currencies, rates, expenses and budgets in process memory.
// It backs the CLI, local development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	"github.com/SscSPs/budget_engine/internal/repositories/seed"
)

// Store is the shared state behind every memory repository.
type Store struct {
	mu         sync.RWMutex
	currencies map[string]domain.Currency
	rates      map[domain.CurrencyPair]domain.ExchangeRate
	expenses   []domain.Expense
	budgets    map[string]domain.Budget
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		currencies: make(map[string]domain.Currency),
		rates:      make(map[domain.CurrencyPair]domain.ExchangeRate),
		budgets:    make(map[string]domain.Budget),
	}
}

var _ seed.Writer = (*Store)(nil)

// SaveCurrency inserts or replaces a currency.
func (s *Store) SaveCurrency(_ context.Context, c domain.Currency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currencies[c.CurrencyID] = c
	return nil
}

// SaveExchangeRate inserts or replaces the rate for the pair.
func (s *Store) SaveExchangeRate(_ context.Context, rate domain.ExchangeRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[rate.Pair()] = rate
	return nil
}

// SaveExpense appends an expense. Expenses are never updated in place.
func (s *Store) SaveExpense(_ context.Context, e domain.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
	return nil
}

// SaveBudget inserts or replaces a budget.
func (s *Store) SaveBudget(_ context.Context, b domain.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets[b.BudgetID] = b
	return nil
}
