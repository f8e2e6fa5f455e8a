package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BudgetReader = (*PgxBudgetRepository)(nil)

// FindBudgetByID retrieves a budget by its ID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `
		SELECT budget_id, user_id, category_id, currency_id, limit_amount, start_date, end_date, alert_threshold
		FROM budgets
		WHERE budget_id = $1;
	`
	var b domain.Budget
	var threshold decimal.NullDecimal
	err := r.Pool.QueryRow(ctx, query, budgetID).Scan(
		&b.BudgetID,
		&b.UserID,
		&b.CategoryID,
		&b.CurrencyID,
		&b.Limit,
		&b.Period.Start,
		&b.Period.End,
		&threshold,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("budget " + budgetID + " not found")
		}
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}
	if threshold.Valid {
		b.AlertThreshold = &threshold.Decimal
	}
	return &b, nil
}

// SaveBudget inserts or replaces a budget. Used to load fixtures.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, b domain.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	var threshold decimal.NullDecimal
	if b.AlertThreshold != nil {
		threshold = decimal.NewNullDecimal(*b.AlertThreshold)
	}
	query := `
		INSERT INTO budgets (budget_id, user_id, category_id, currency_id, limit_amount, start_date, end_date, alert_threshold)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (budget_id) DO UPDATE SET
			category_id = EXCLUDED.category_id,
			currency_id = EXCLUDED.currency_id,
			limit_amount = EXCLUDED.limit_amount,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			alert_threshold = EXCLUDED.alert_threshold;
	`
	_, err := r.Pool.Exec(ctx, query,
		b.BudgetID, b.UserID, b.CategoryID, b.CurrencyID, b.Limit,
		domain.DateOnly(b.Period.Start), domain.DateOnly(b.Period.End), threshold,
	)
	if err != nil {
		return fmt.Errorf("failed to save budget %s: %w", b.BudgetID, err)
	}
	return nil
}
