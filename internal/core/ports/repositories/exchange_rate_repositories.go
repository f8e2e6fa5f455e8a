package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the rate stored for the ordered pair, or an error
	// matching apperrors.ErrRateNotFound. It never falls back to the inverse pair.
	FindExchangeRate(ctx context.Context, originCurrencyID, destinationCurrencyID string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every stored rate ordered by origin then destination.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// UpsertExchangeRate inserts the pair or overwrites its rate and timestamp atomically.
	UpsertExchangeRate(ctx context.Context, originCurrencyID, destinationCurrencyID string, rate decimal.Decimal, at time.Time) (*domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
