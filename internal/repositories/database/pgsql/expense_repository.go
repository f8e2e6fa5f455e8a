package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseReader = (*PgxExpenseRepository)(nil)

// FindExpenses selects a user's expenses with start <= occurred_on <= end, optionally
// restricted to one category.
func (r *PgxExpenseRepository) FindExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, user_id, category_id, currency_id, amount, occurred_on, registered_at
		FROM expenses
		WHERE user_id = $1
		  AND occurred_on BETWEEN $2 AND $3
		  AND ($4::text IS NULL OR category_id = $4)
		ORDER BY occurred_on, expense_id;
	`
	rows, err := r.Pool.Query(ctx, query,
		filter.UserID,
		domain.DateOnly(filter.Range.Start),
		domain.DateOnly(filter.Range.End),
		filter.CategoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for user %s: %w", filter.UserID, err)
	}
	defer rows.Close()

	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Expense, error) {
		var e domain.Expense
		err := row.Scan(&e.ExpenseID, &e.UserID, &e.CategoryID, &e.CurrencyID, &e.Amount, &e.OccurredOn, &e.RegisteredAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}
	return expenses, nil
}

// SaveExpense inserts an expense once; reloading the same fixture is a no-op. The engine
// itself never writes expenses.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, e domain.Expense) error {
	query := `
		INSERT INTO expenses (expense_id, user_id, category_id, currency_id, amount, occurred_on, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (expense_id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query,
		e.ExpenseID, e.UserID, e.CategoryID, e.CurrencyID, e.Amount, domain.DateOnly(e.OccurredOn), e.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", e.ExpenseID, err)
	}
	return nil
}
