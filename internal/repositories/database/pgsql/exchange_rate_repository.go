package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxExchangeRateRepository stores one row per ordered currency pair.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (domain.ExchangeRate, error) {
	var rate domain.ExchangeRate
	err := row.Scan(&rate.OriginCurrencyID, &rate.DestinationCurrencyID, &rate.Rate, &rate.LastUpdated)
	return rate, err
}

// FindExchangeRate returns the stored rate for exactly origin->destination.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, origin, destination string) (*domain.ExchangeRate, error) {
	query := `
		SELECT origin_currency_id, destination_currency_id, rate, last_updated
		FROM exchange_rates
		WHERE origin_currency_id = $1 AND destination_currency_id = $2;
	`
	rate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, origin, destination))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewRateNotFoundError(fmt.Sprintf("no exchange rate %s->%s", origin, destination))
		}
		return nil, fmt.Errorf("failed to find exchange rate %s->%s: %w", origin, destination, err)
	}
	return &rate, nil
}

// ListExchangeRates retrieves all exchange rates ordered by pair.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT origin_currency_id, destination_currency_id, rate, last_updated
		FROM exchange_rates
		ORDER BY origin_currency_id, destination_currency_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}
	return rates, nil
}

// UpsertExchangeRate writes rate and timestamp in one statement; concurrent writers on the
// same pair serialize on the row.
func (r *PgxExchangeRateRepository) UpsertExchangeRate(ctx context.Context, origin, destination string, rate decimal.Decimal, at time.Time) (*domain.ExchangeRate, error) {
	query := `
		INSERT INTO exchange_rates (origin_currency_id, destination_currency_id, rate, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (origin_currency_id, destination_currency_id) DO UPDATE SET
			rate = EXCLUDED.rate,
			last_updated = EXCLUDED.last_updated
		RETURNING origin_currency_id, destination_currency_id, rate, last_updated;
	`
	saved, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, origin, destination, rate, at))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert exchange rate %s->%s: %w", origin, destination, err)
	}
	return &saved, nil
}
