package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type exchangeRateRepository struct {
	store *Store
}

func newExchangeRateRepository(store *Store) portsrepo.ExchangeRateRepositoryFacade {
	return &exchangeRateRepository{store: store}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*exchangeRateRepository)(nil)

func (r *exchangeRateRepository) FindExchangeRate(ctx context.Context, origin, destination string) (*domain.ExchangeRate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	rate, ok := r.store.rates[domain.CurrencyPair{Origin: origin, Destination: destination}]
	r.store.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewRateNotFoundError(fmt.Sprintf("no exchange rate %s->%s", origin, destination))
	}
	return &rate, nil
}

func (r *exchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	rates := make([]domain.ExchangeRate, 0, len(r.store.rates))
	for _, rate := range r.store.rates {
		rates = append(rates, rate)
	}
	r.store.mu.RUnlock()

	sort.Slice(rates, func(i, j int) bool {
		if rates[i].OriginCurrencyID != rates[j].OriginCurrencyID {
			return rates[i].OriginCurrencyID < rates[j].OriginCurrencyID
		}
		return rates[i].DestinationCurrencyID < rates[j].DestinationCurrencyID
	})
	return rates, nil
}

// UpsertExchangeRate replaces the whole value under the write lock, so a reader sees either
// the old rate and timestamp or the new ones.
func (r *exchangeRateRepository) UpsertExchangeRate(ctx context.Context, origin, destination string, rate decimal.Decimal, at time.Time) (*domain.ExchangeRate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	saved := domain.ExchangeRate{
		OriginCurrencyID:      origin,
		DestinationCurrencyID: destination,
		Rate:                  rate,
		LastUpdated:           at,
	}
	r.store.mu.Lock()
	r.store.rates[saved.Pair()] = saved
	r.store.mu.Unlock()
	return &saved, nil
}
