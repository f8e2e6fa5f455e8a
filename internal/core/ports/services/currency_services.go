package services

import (
	"context"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrency retrieves a specific currency by its identity.
	GetCurrency(ctx context.Context, currencyID string) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade is the currency surface exposed to handlers.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the directional rate for a currency pair.
	GetExchangeRate(ctx context.Context, originCurrencyID, destinationCurrencyID string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every stored rate.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// SetExchangeRate creates or overwrites the rate for an ordered pair.
	SetExchangeRate(ctx context.Context, originCurrencyID, destinationCurrencyID string, rate decimal.Decimal) (*domain.ExchangeRate, error)
}

// ConverterSvc converts amounts between currencies using directional rates only.
type ConverterSvc interface {
	// ConvertAmount returns amount unchanged for identical currencies and amount*rate
	// otherwise, failing with apperrors.ErrRateNotFound when no direct rate is stored.
	ConvertAmount(ctx context.Context, amount decimal.Decimal, originCurrencyID, destinationCurrencyID string) (decimal.Decimal, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
	ConverterSvc
}
