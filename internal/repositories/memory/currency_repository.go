package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
)

type currencyRepository struct {
	store *Store
}

func newCurrencyRepository(store *Store) portsrepo.CurrencyReader {
	return &currencyRepository{store: store}
}

var _ portsrepo.CurrencyReader = (*currencyRepository)(nil)

func (r *currencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	c, ok := r.store.currencies[currencyID]
	if !ok {
		return nil, apperrors.NewNotFoundError("currency " + currencyID + " not found")
	}
	return &c, nil
}

func (r *currencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.currencies {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, apperrors.NewNotFoundError("currency with code " + code + " not found")
}

func (r *currencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	r.store.mu.RLock()
	currencies := make([]domain.Currency, 0, len(r.store.currencies))
	for _, c := range r.store.currencies {
		currencies = append(currencies, c)
	}
	r.store.mu.RUnlock()

	sort.Slice(currencies, func(i, j int) bool { return currencies[i].Code < currencies[j].Code })
	return currencies, nil
}
