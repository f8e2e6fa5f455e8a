package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
)

type CurrencyRepository struct {
	db *sql.DB
}

var _ portsrepo.CurrencyReader = (*CurrencyRepository)(nil)

const currencyColumns = `currency_id, code, name, symbol, is_active, created_at, created_by, last_updated_at, last_updated_by`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCurrency(row rowScanner) (domain.Currency, error) {
	var c domain.Currency
	var createdAt, updatedAt string
	if err := row.Scan(&c.CurrencyID, &c.Code, &c.Name, &c.Symbol, &c.IsActive,
		&createdAt, &c.CreatedBy, &updatedAt, &c.LastUpdatedBy); err != nil {
		return c, err
	}
	var err error
	if c.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return c, err
	}
	if c.LastUpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return c, err
	}
	return c, nil
}

func (r *CurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	c, err := scanCurrency(r.db.QueryRowContext(ctx,
		`SELECT `+currencyColumns+` FROM currencies WHERE currency_id = ?`, currencyID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency " + currencyID + " not found")
		}
		return nil, fmt.Errorf("find currency %s: %w", currencyID, err)
	}
	return &c, nil
}

func (r *CurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	c, err := scanCurrency(r.db.QueryRowContext(ctx,
		`SELECT `+currencyColumns+` FROM currencies WHERE code = ?`, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency with code " + code + " not found")
		}
		return nil, fmt.Errorf("find currency by code %s: %w", code, err)
	}
	return &c, nil
}

func (r *CurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+currencyColumns+` FROM currencies ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	defer rows.Close()

	currencies := make([]domain.Currency, 0)
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		currencies = append(currencies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate currencies: %w", err)
	}
	return currencies, nil
}

func (r *CurrencyRepository) SaveCurrency(ctx context.Context, c domain.Currency) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO currencies (`+currencyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (currency_id) DO UPDATE SET
			name = excluded.name,
			symbol = excluded.symbol,
			is_active = excluded.is_active,
			last_updated_at = excluded.last_updated_at,
			last_updated_by = excluded.last_updated_by`,
		c.CurrencyID, c.Code, c.Name, c.Symbol, c.IsActive,
		formatTimestamp(c.CreatedAt), c.CreatedBy, formatTimestamp(c.LastUpdatedAt), c.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("save currency %s: %w", c.Code, err)
	}
	return nil
}
