package pgsql

import (
	"context"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	"github.com/SscSPs/budget_engine/internal/repositories/seed"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Fixtures pairs the read-only provider with the write helpers used to load reference data.
type Fixtures struct {
	Provider   portsrepo.RepositoryProvider
	currencies *PgxCurrencyRepository
	rates      *PgxExchangeRateRepository
	expenses   *PgxExpenseRepository
	budgets    *PgxBudgetRepository
}

var _ seed.Writer = (*Fixtures)(nil)

func NewFixtures(dbPool *pgxpool.Pool) *Fixtures {
	return &Fixtures{
		Provider:   NewRepositoryProvider(dbPool),
		currencies: newPgxCurrencyRepository(dbPool),
		rates:      newPgxExchangeRateRepository(dbPool),
		expenses:   newPgxExpenseRepository(dbPool),
		budgets:    newPgxBudgetRepository(dbPool),
	}
}

func (f *Fixtures) SaveCurrency(ctx context.Context, c domain.Currency) error {
	return f.currencies.SaveCurrency(ctx, c)
}

func (f *Fixtures) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	_, err := f.rates.UpsertExchangeRate(ctx, rate.OriginCurrencyID, rate.DestinationCurrencyID, rate.Rate, rate.LastUpdated)
	return err
}

func (f *Fixtures) SaveExpense(ctx context.Context, e domain.Expense) error {
	return f.expenses.SaveExpense(ctx, e)
}

func (f *Fixtures) SaveBudget(ctx context.Context, b domain.Budget) error {
	return f.budgets.SaveBudget(ctx, b)
}
