//go:build integration

package pgsql_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	"github.com/SscSPs/budget_engine/internal/repositories/database/pgsql"
	"github.com/SscSPs/budget_engine/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PgsqlRepositorySuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	repo      *pgsql.Fixtures
	closePool func()
}

func (s *PgsqlRepositorySuite) SetupSuite() {
	ctx := context.Background()
	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("budget_engine"),
		postgres.WithUsername("budget"),
		postgres.WithPassword("budget"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	applied, err := pgsql.RunMigrations(dsn)
	s.Require().NoError(err)
	s.True(applied)

	pool, err := database.NewPgxPool(ctx, dsn, true)
	s.Require().NoError(err)
	s.closePool = pool.Close
	s.repo = pgsql.NewFixtures(pool)

	now := time.Now().UTC()
	for _, c := range []domain.Currency{
		{CurrencyID: "usd", Code: "USD", Name: "US Dollar", Symbol: "$", IsActive: true},
		{CurrencyID: "eur", Code: "EUR", Name: "Euro", Symbol: "€", IsActive: true},
	} {
		c.CreatedAt, c.LastUpdatedAt, c.CreatedBy, c.LastUpdatedBy = now, now, "test", "test"
		s.Require().NoError(s.repo.SaveCurrency(ctx, c))
	}
}

func (s *PgsqlRepositorySuite) TearDownSuite() {
	if s.closePool != nil {
		s.closePool()
	}
	if s.container != nil {
		s.NoError(s.container.Terminate(context.Background()))
	}
}

func (s *PgsqlRepositorySuite) TestUpsertOverwritesSingleRow() {
	ctx := context.Background()
	first := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

	_, err := s.repo.Provider.ExchangeRateRepo.UpsertExchangeRate(ctx, "usd", "eur", decimal.RequireFromString("0.85"), first)
	s.Require().NoError(err)
	saved, err := s.repo.Provider.ExchangeRateRepo.UpsertExchangeRate(ctx, "usd", "eur", decimal.RequireFromString("0.9"), first.Add(time.Hour))
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("0.9").Equal(saved.Rate))

	rates, err := s.repo.Provider.ExchangeRateRepo.ListExchangeRates(ctx)
	s.Require().NoError(err)
	s.Len(rates, 1)
	s.True(first.Add(time.Hour).Equal(rates[0].LastUpdated))

	_, err = s.repo.Provider.ExchangeRateRepo.FindExchangeRate(ctx, "eur", "usd")
	s.ErrorIs(err, apperrors.ErrRateNotFound)
}

func (s *PgsqlRepositorySuite) TestExpensesInclusiveRangeAndCategory() {
	ctx := context.Background()
	for _, e := range []domain.Expense{
		{ExpenseID: "e1", UserID: "u1", CategoryID: "food", CurrencyID: "usd", Amount: decimal.NewFromInt(10), OccurredOn: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ExpenseID: "e2", UserID: "u1", CategoryID: "rent", CurrencyID: "usd", Amount: decimal.NewFromInt(20), OccurredOn: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
		{ExpenseID: "e3", UserID: "u1", CategoryID: "food", CurrencyID: "usd", Amount: decimal.NewFromInt(30), OccurredOn: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	} {
		e.RegisteredAt = time.Now().UTC()
		s.Require().NoError(s.repo.SaveExpense(ctx, e))
	}
	march, err := domain.ParseDateRange("2024-03-01", "2024-03-31")
	s.Require().NoError(err)

	all, err := s.repo.Provider.ExpenseRepo.FindExpenses(ctx, domain.ExpenseFilter{UserID: "u1", Range: march})
	s.Require().NoError(err)
	s.Len(all, 2)

	food := "food"
	onlyFood, err := s.repo.Provider.ExpenseRepo.FindExpenses(ctx, domain.ExpenseFilter{UserID: "u1", Range: march, CategoryID: &food})
	s.Require().NoError(err)
	s.Require().Len(onlyFood, 1)
	s.Equal("e1", onlyFood[0].ExpenseID)
}

func (s *PgsqlRepositorySuite) TestBudgetRoundTrip() {
	ctx := context.Background()
	period, err := domain.ParseDateRange("2024-03-01", "2024-03-31")
	s.Require().NoError(err)
	threshold := decimal.NewFromInt(80)
	s.Require().NoError(s.repo.SaveBudget(ctx, domain.Budget{
		BudgetID: "b1", UserID: "u1", CurrencyID: "usd", Limit: decimal.NewFromInt(100),
		Period: period, AlertThreshold: &threshold,
	}))

	b, err := s.repo.Provider.BudgetRepo.FindBudgetByID(ctx, "b1")
	s.Require().NoError(err)
	s.Nil(b.CategoryID)
	s.Require().NotNil(b.AlertThreshold)
	s.True(threshold.Equal(*b.AlertThreshold))

	_, err = s.repo.Provider.BudgetRepo.FindBudgetByID(ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPgsqlRepositories(t *testing.T) {
	suite.Run(t, new(PgsqlRepositorySuite))
}
