package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spend record. The engine only reads expenses.
type Expense struct {
	ExpenseID    string          `json:"expenseID"`
	UserID       string          `json:"userID"`
	CategoryID   string          `json:"categoryID"`
	CurrencyID   string          `json:"currencyID"`
	Amount       decimal.Decimal `json:"amount"`
	OccurredOn   time.Time       `json:"occurredOn"`   // calendar date, time-of-day ignored
	RegisteredAt time.Time       `json:"registeredAt"` // set once at creation
}

// ExpenseFilter selects the expenses of one user inside an inclusive date window,
// optionally restricted to a single category.
type ExpenseFilter struct {
	UserID     string
	Range      DateRange
	CategoryID *string
}

// Matches reports whether e satisfies the filter. Storage adapters that cannot push the
// filter down to a query use it directly.
func (f ExpenseFilter) Matches(e Expense) bool {
	if e.UserID != f.UserID {
		return false
	}
	if f.CategoryID != nil && e.CategoryID != *f.CategoryID {
		return false
	}
	return f.Range.Contains(e.OccurredOn)
}
