package pgsql

import (
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		BudgetRepo:       newPgxBudgetRepository(dbPool),
		Close:            dbPool.Close,
	}
}
