package repositories

import (
	"context"

	"github.com/SscSPs/budget_engine/internal/core/domain"
)

// CurrencyReader defines read operations for currency data.
// Currency creation belongs to an external collaborator.
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by its identity.
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// FindCurrencyByCode retrieves a currency by its 3-letter code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
