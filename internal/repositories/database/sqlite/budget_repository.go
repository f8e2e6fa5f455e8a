package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type BudgetRepository struct {
	db *sql.DB
}

var _ portsrepo.BudgetReader = (*BudgetRepository)(nil)

func (r *BudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	var b domain.Budget
	var categoryID sql.NullString
	var threshold decimal.NullDecimal
	var startDate, endDate string
	err := r.db.QueryRowContext(ctx, `
		SELECT budget_id, user_id, category_id, currency_id, limit_amount, start_date, end_date, alert_threshold
		FROM budgets
		WHERE budget_id = ?`, budgetID).
		Scan(&b.BudgetID, &b.UserID, &categoryID, &b.CurrencyID, &b.Limit, &startDate, &endDate, &threshold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("budget " + budgetID + " not found")
		}
		return nil, fmt.Errorf("find budget %s: %w", budgetID, err)
	}

	if categoryID.Valid {
		b.CategoryID = &categoryID.String
	}
	if threshold.Valid {
		b.AlertThreshold = &threshold.Decimal
	}
	if b.Period, err = domain.ParseDateRange(startDate, endDate); err != nil {
		return nil, fmt.Errorf("budget %s: %w", budgetID, err)
	}
	return &b, nil
}

func (r *BudgetRepository) SaveBudget(ctx context.Context, b domain.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	var threshold sql.NullString
	if b.AlertThreshold != nil {
		threshold = sql.NullString{String: b.AlertThreshold.String(), Valid: true}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO budgets (budget_id, user_id, category_id, currency_id, limit_amount, start_date, end_date, alert_threshold)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (budget_id) DO UPDATE SET
			category_id = excluded.category_id,
			currency_id = excluded.currency_id,
			limit_amount = excluded.limit_amount,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			alert_threshold = excluded.alert_threshold`,
		b.BudgetID, b.UserID, b.CategoryID, b.CurrencyID, b.Limit.String(),
		b.Period.Start.Format(domain.DateLayout), b.Period.End.Format(domain.DateLayout), threshold,
	)
	if err != nil {
		return fmt.Errorf("save budget %s: %w", b.BudgetID, err)
	}
	return nil
}
