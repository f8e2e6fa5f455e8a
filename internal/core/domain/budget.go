package domain

import (
	"fmt"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Budget caps a user's spending over an inclusive date window, in its own currency.
// A nil CategoryID applies the budget to every category of the user.
type Budget struct {
	BudgetID       string           `json:"budgetID"`
	UserID         string           `json:"userID"`
	CategoryID     *string          `json:"categoryID,omitempty"`
	CurrencyID     string           `json:"currencyID"`
	Limit          decimal.Decimal  `json:"limit"`
	Period         DateRange        `json:"period"`
	AlertThreshold *decimal.Decimal `json:"alertThreshold,omitempty"` // percentage, 0-100
}

var hundred = decimal.NewFromInt(100)

// ExpenseFilter returns the expense selection this budget is measured against.
func (b Budget) ExpenseFilter() ExpenseFilter {
	return ExpenseFilter{
		UserID:     b.UserID,
		Range:      b.Period,
		CategoryID: b.CategoryID,
	}
}

// HasAlertThreshold reports whether an alert percentage is configured.
func (b Budget) HasAlertThreshold() bool {
	return b.AlertThreshold != nil
}

// Validate checks the invariants storage adapters are expected to uphold.
func (b Budget) Validate() error {
	if err := b.Period.Validate(); err != nil {
		return fmt.Errorf("budget %s: %w", b.BudgetID, err)
	}
	if b.AlertThreshold != nil && (b.AlertThreshold.IsNegative() || b.AlertThreshold.GreaterThan(hundred)) {
		return fmt.Errorf("%w: budget %s alert threshold %s outside 0-100", apperrors.ErrValidation, b.BudgetID, b.AlertThreshold)
	}
	return nil
}
