package services

import (
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_engine/internal/core/ports/services"
	"github.com/SscSPs/budget_engine/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(
		repos.ExchangeRateRepo,
		WithCurrencyValidation(repos.CurrencyRepo),
	)
	container.Aggregation = NewAggregationService(
		repos.ExpenseRepo,
		repos.BudgetRepo,
		container.ExchangeRate,
		WithAggregationConcurrency(cfg.AggregationConcurrency),
	)

	return container
}
