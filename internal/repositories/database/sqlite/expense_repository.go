package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
)

type ExpenseRepository struct {
	db *sql.DB
}

var _ portsrepo.ExpenseReader = (*ExpenseRepository)(nil)

// FindExpenses compares dates as YYYY-MM-DD text, which orders the same as the dates.
func (r *ExpenseRepository) FindExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT expense_id, user_id, category_id, currency_id, amount, occurred_on, registered_at
		FROM expenses
		WHERE user_id = ?
		  AND occurred_on BETWEEN ? AND ?
		  AND (? IS NULL OR category_id = ?)
		ORDER BY occurred_on, expense_id`,
		filter.UserID,
		domain.DateOnly(filter.Range.Start).Format(domain.DateLayout),
		domain.DateOnly(filter.Range.End).Format(domain.DateLayout),
		filter.CategoryID, filter.CategoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("query expenses for user %s: %w", filter.UserID, err)
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		var e domain.Expense
		var occurredOn, registeredAt string
		if err := rows.Scan(&e.ExpenseID, &e.UserID, &e.CategoryID, &e.CurrencyID, &e.Amount, &occurredOn, &registeredAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		if e.OccurredOn, err = parseDate(occurredOn); err != nil {
			return nil, err
		}
		if e.RegisteredAt, err = parseTimestamp(registeredAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) SaveExpense(ctx context.Context, e domain.Expense) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (expense_id, user_id, category_id, currency_id, amount, occurred_on, registered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (expense_id) DO NOTHING`,
		e.ExpenseID, e.UserID, e.CategoryID, e.CurrencyID, e.Amount.String(),
		e.OccurredOn.Format(domain.DateLayout), formatTimestamp(e.RegisteredAt),
	)
	if err != nil {
		return fmt.Errorf("save expense %s: %w", e.ExpenseID, err)
	}
	return nil
}
