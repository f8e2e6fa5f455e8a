package sqlite

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	"github.com/SscSPs/budget_engine/internal/repositories/seed"
)

// Repositories holds every SQLite repository over one connection pool.
type Repositories struct {
	db           *sql.DB
	Currencies   *CurrencyRepository
	ExchangeRate *ExchangeRateRepository
	Expenses     *ExpenseRepository
	Budgets      *BudgetRepository
}

var _ seed.Writer = (*Repositories)(nil)

func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		db:           db,
		Currencies:   &CurrencyRepository{db: db},
		ExchangeRate: &ExchangeRateRepository{db: db},
		Expenses:     &ExpenseRepository{db: db},
		Budgets:      &BudgetRepository{db: db},
	}
}

// Provider exposes the repositories through the ports; Close closes the pool.
func (r *Repositories) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     r.Currencies,
		ExchangeRateRepo: r.ExchangeRate,
		ExpenseRepo:      r.Expenses,
		BudgetRepo:       r.Budgets,
		Close: func() {
			if err := r.db.Close(); err != nil {
				slog.Error("Error closing SQLite database", slog.String("error", err.Error()))
			}
		},
	}
}

func (r *Repositories) SaveCurrency(ctx context.Context, c domain.Currency) error {
	return r.Currencies.SaveCurrency(ctx, c)
}

func (r *Repositories) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	_, err := r.ExchangeRate.UpsertExchangeRate(ctx, rate.OriginCurrencyID, rate.DestinationCurrencyID, rate.Rate, rate.LastUpdated)
	return err
}

func (r *Repositories) SaveExpense(ctx context.Context, e domain.Expense) error {
	return r.Expenses.SaveExpense(ctx, e)
}

func (r *Repositories) SaveBudget(ctx context.Context, b domain.Budget) error {
	return r.Budgets.SaveBudget(ctx, b)
}
