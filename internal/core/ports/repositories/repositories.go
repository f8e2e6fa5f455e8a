package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CurrencyRepo     CurrencyReader
	ExchangeRateRepo ExchangeRateRepositoryFacade
	ExpenseRepo      ExpenseReader
	BudgetRepo       BudgetReader

	// Close releases the underlying storage (pool, file handle). May be nil.
	Close func()
}
