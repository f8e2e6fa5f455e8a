package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type ExchangeRateRepository struct {
	db *sql.DB
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*ExchangeRateRepository)(nil)

func scanExchangeRate(row rowScanner) (domain.ExchangeRate, error) {
	var rate domain.ExchangeRate
	var lastUpdated string
	if err := row.Scan(&rate.OriginCurrencyID, &rate.DestinationCurrencyID, &rate.Rate, &lastUpdated); err != nil {
		return rate, err
	}
	var err error
	rate.LastUpdated, err = parseTimestamp(lastUpdated)
	return rate, err
}

func (r *ExchangeRateRepository) FindExchangeRate(ctx context.Context, origin, destination string) (*domain.ExchangeRate, error) {
	rate, err := scanExchangeRate(r.db.QueryRowContext(ctx, `
		SELECT origin_currency_id, destination_currency_id, rate, last_updated
		FROM exchange_rates
		WHERE origin_currency_id = ? AND destination_currency_id = ?`, origin, destination))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewRateNotFoundError(fmt.Sprintf("no exchange rate %s->%s", origin, destination))
		}
		return nil, fmt.Errorf("find exchange rate %s->%s: %w", origin, destination, err)
	}
	return &rate, nil
}

func (r *ExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT origin_currency_id, destination_currency_id, rate, last_updated
		FROM exchange_rates
		ORDER BY origin_currency_id, destination_currency_id`)
	if err != nil {
		return nil, fmt.Errorf("list exchange rates: %w", err)
	}
	defer rows.Close()

	rates := make([]domain.ExchangeRate, 0)
	for rows.Next() {
		rate, err := scanExchangeRate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exchange rate: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exchange rates: %w", err)
	}
	return rates, nil
}

// UpsertExchangeRate writes rate and timestamp in a single statement.
func (r *ExchangeRateRepository) UpsertExchangeRate(ctx context.Context, origin, destination string, rate decimal.Decimal, at time.Time) (*domain.ExchangeRate, error) {
	saved, err := scanExchangeRate(r.db.QueryRowContext(ctx, `
		INSERT INTO exchange_rates (origin_currency_id, destination_currency_id, rate, last_updated)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (origin_currency_id, destination_currency_id) DO UPDATE SET
			rate = excluded.rate,
			last_updated = excluded.last_updated
		RETURNING origin_currency_id, destination_currency_id, rate, last_updated`,
		origin, destination, rate.String(), formatTimestamp(at)))
	if err != nil {
		return nil, fmt.Errorf("upsert exchange rate %s->%s: %w", origin, destination, err)
	}
	return &saved, nil
}
