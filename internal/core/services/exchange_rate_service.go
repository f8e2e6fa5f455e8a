package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_engine/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// exchangeRateService is the rate store and currency converter.
type exchangeRateService struct {
	BaseService
	rateRepo       portsrepo.ExchangeRateRepositoryFacade
	currencyReader portsrepo.CurrencyReader
	now            func() time.Time
}

// ExchangeRateServiceOption is a functional option for configuring the exchange rate service
type ExchangeRateServiceOption func(*exchangeRateService)

// WithCurrencyValidation makes SetExchangeRate reject currencies the reader does not know.
func WithCurrencyValidation(reader portsrepo.CurrencyReader) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.currencyReader = reader
	}
}

// WithClock overrides the timestamp source used for LastUpdated.
func WithClock(now func() time.Time) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.now = now
	}
}

// NewExchangeRateService creates a new exchange rate service with the provided options
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, options ...ExchangeRateServiceOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		rateRepo: rateRepo,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// SetExchangeRate creates the rate for an ordered pair or overwrites the existing one.
// The reverse pair is never touched.
func (s *exchangeRateService) SetExchangeRate(ctx context.Context, originCurrencyID, destinationCurrencyID string, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	originCurrencyID = strings.TrimSpace(originCurrencyID)
	destinationCurrencyID = strings.TrimSpace(destinationCurrencyID)

	if originCurrencyID == "" || destinationCurrencyID == "" {
		return nil, fmt.Errorf("%w: origin and destination currency ids are required", apperrors.ErrValidation)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if originCurrencyID == destinationCurrencyID {
		return nil, fmt.Errorf("%w: origin and destination currencies cannot be the same", apperrors.ErrValidation)
	}

	if s.currencyReader != nil {
		if err := s.ensureCurrencyExists(ctx, "origin", originCurrencyID); err != nil {
			return nil, err
		}
		if err := s.ensureCurrencyExists(ctx, "destination", destinationCurrencyID); err != nil {
			return nil, err
		}
	}

	saved, err := s.rateRepo.UpsertExchangeRate(ctx, originCurrencyID, destinationCurrencyID, rate, s.now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate",
			slog.String("origin", originCurrencyID),
			slog.String("destination", destinationCurrencyID))
		return nil, fmt.Errorf("failed to set exchange rate: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate set",
		slog.String("origin", originCurrencyID),
		slog.String("destination", destinationCurrencyID),
		slog.String("rate", saved.Rate.String()))
	return saved, nil
}

func (s *exchangeRateService) ensureCurrencyExists(ctx context.Context, side, currencyID string) error {
	_, err := s.currencyReader.FindCurrencyByID(ctx, currencyID)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: %s currency '%s' not found", apperrors.ErrValidation, side, currencyID)
	}
	return fmt.Errorf("failed to validate %s currency '%s': %w", side, currencyID, err)
}

// GetExchangeRate retrieves the stored rate for the ordered pair.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, originCurrencyID, destinationCurrencyID string) (*domain.ExchangeRate, error) {
	if originCurrencyID == "" || destinationCurrencyID == "" {
		return nil, fmt.Errorf("%w: origin and destination currency ids are required", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, originCurrencyID, destinationCurrencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate %s->%s: %w", originCurrencyID, destinationCurrencyID, err)
	}
	return rate, nil
}

// ListExchangeRates retrieves every stored rate.
func (s *exchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// ConvertAmount converts using the direct rate only; no inverse or intermediate currency
// is ever consulted.
func (s *exchangeRateService) ConvertAmount(ctx context.Context, amount decimal.Decimal, originCurrencyID, destinationCurrencyID string) (decimal.Decimal, error) {
	if originCurrencyID == destinationCurrencyID {
		return amount, nil
	}

	rate, err := s.GetExchangeRate(ctx, originCurrencyID, destinationCurrencyID)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Convert(amount), nil
}
