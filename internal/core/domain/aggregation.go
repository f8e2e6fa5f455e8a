package domain

import "github.com/shopspring/decimal"

// SkipReason explains why an expense did not contribute to a total.
type SkipReason string

const (
	SkipReasonRateNotFound SkipReason = "rate_not_found"
)

// ConversionOutcome is the per-expense result of normalising into a target currency:
// either Converted (Skipped == false, Amount set) or Skipped (Reason set).
type ConversionOutcome struct {
	Expense Expense
	Amount  decimal.Decimal
	Skipped bool
	Reason  SkipReason
}

// Converted builds a successful outcome.
func Converted(e Expense, amount decimal.Decimal) ConversionOutcome {
	return ConversionOutcome{Expense: e, Amount: amount}
}

// Skipped builds an excluded outcome.
func Skipped(e Expense, reason SkipReason) ConversionOutcome {
	return ConversionOutcome{Expense: e, Skipped: true, Reason: reason}
}

// SkippedExpense records an expense left out of a total.
type SkippedExpense struct {
	ExpenseID  string          `json:"expenseID"`
	CurrencyID string          `json:"currencyID"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     SkipReason      `json:"reason"`
}

// ExpenseTotal is a currency-normalised sum. When Skipped is non-empty the total is a lower
// bound rather than a complete figure.
type ExpenseTotal struct {
	CurrencyID    string           `json:"currencyID"`
	Total         decimal.Decimal  `json:"total"`
	IncludedCount int              `json:"includedCount"`
	Skipped       []SkippedExpense `json:"skipped"`
}

// IsComplete reports whether every selected expense was converted.
func (t ExpenseTotal) IsComplete() bool {
	return len(t.Skipped) == 0
}

// FoldOutcomes sums converted outcomes and collects skipped ones. Decimal addition is exact,
// so the order of outcomes does not affect the result.
func FoldOutcomes(currencyID string, outcomes []ConversionOutcome) ExpenseTotal {
	total := ExpenseTotal{
		CurrencyID: currencyID,
		Total:      decimal.Zero,
		Skipped:    []SkippedExpense{},
	}
	for _, o := range outcomes {
		if o.Skipped {
			total.Skipped = append(total.Skipped, SkippedExpense{
				ExpenseID:  o.Expense.ExpenseID,
				CurrencyID: o.Expense.CurrencyID,
				Amount:     o.Expense.Amount,
				Reason:     o.Reason,
			})
			continue
		}
		total.Total = total.Total.Add(o.Amount)
		total.IncludedCount++
	}
	return total
}

// BudgetStatus is a one-shot view of a budget's consumption.
type BudgetStatus struct {
	BudgetID           string           `json:"budgetID"`
	CurrencyID         string           `json:"currencyID"`
	Limit              decimal.Decimal  `json:"limit"`
	Used               decimal.Decimal  `json:"used"`
	Remaining          decimal.Decimal  `json:"remaining"`
	PercentageConsumed decimal.Decimal  `json:"percentageConsumed"`
	AlertThreshold     *decimal.Decimal `json:"alertThreshold,omitempty"`
	AlertTriggered     bool             `json:"alertTriggered"`
	Complete           bool             `json:"complete"`
}

// PercentageOf returns round(used/limit*100, 2) with half-away-from-zero rounding.
// A non-positive limit yields zero. No upper clamp is applied.
func PercentageOf(used, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}
	return used.Div(limit).Mul(hundred).Round(2)
}

// AlertTriggered reports whether percentage reaches the threshold (inclusive).
func AlertTriggered(percentage decimal.Decimal, threshold *decimal.Decimal) bool {
	if threshold == nil {
		return false
	}
	return percentage.GreaterThanOrEqual(*threshold)
}
