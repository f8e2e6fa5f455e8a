package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestPercentageOf(t *testing.T) {
	tests := []struct {
		name  string
		used  string
		limit string
		want  string
	}{
		{name: "exact", used: "80", limit: "100", want: "80"},
		{name: "overspend is not clamped", used: "500", limit: "100", want: "500"},
		{name: "half rounds away from zero", used: "12.345", limit: "100", want: "12.35"},
		{name: "negative half rounds away from zero", used: "-12.345", limit: "100", want: "-12.35"},
		{name: "below half rounds down", used: "12.344", limit: "100", want: "12.34"},
		{name: "repeating fraction", used: "1", limit: "3", want: "33.33"},
		{name: "zero limit", used: "50", limit: "0", want: "0"},
		{name: "negative limit", used: "50", limit: "-10", want: "0"},
		{name: "nothing used", used: "0", limit: "250", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.PercentageOf(dec(tt.used), dec(tt.limit))
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestAlertTriggered(t *testing.T) {
	assert.True(t, domain.AlertTriggered(dec("80"), decPtr("80")), "boundary is inclusive")
	assert.True(t, domain.AlertTriggered(dec("80.01"), decPtr("80")))
	assert.False(t, domain.AlertTriggered(dec("79.99"), decPtr("80")))
	assert.False(t, domain.AlertTriggered(dec("500"), nil), "no threshold never alerts")
	assert.True(t, domain.AlertTriggered(dec("0"), decPtr("0")))
}

func TestFoldOutcomes(t *testing.T) {
	e1 := domain.Expense{ExpenseID: "e1", CurrencyID: "A", Amount: dec("10")}
	e2 := domain.Expense{ExpenseID: "e2", CurrencyID: "B", Amount: dec("5")}
	e3 := domain.Expense{ExpenseID: "e3", CurrencyID: "C", Amount: dec("1.25")}

	total := domain.FoldOutcomes("C", []domain.ConversionOutcome{
		domain.Converted(e1, dec("20")),
		domain.Skipped(e2, domain.SkipReasonRateNotFound),
		domain.Converted(e3, dec("1.25")),
	})

	assert.Equal(t, "C", total.CurrencyID)
	assert.True(t, dec("21.25").Equal(total.Total))
	assert.Equal(t, 2, total.IncludedCount)
	assert.False(t, total.IsComplete())
	if assert.Len(t, total.Skipped, 1) {
		assert.Equal(t, "e2", total.Skipped[0].ExpenseID)
		assert.Equal(t, domain.SkipReasonRateNotFound, total.Skipped[0].Reason)
	}

	empty := domain.FoldOutcomes("C", nil)
	assert.True(t, empty.Total.IsZero())
	assert.True(t, empty.IsComplete())
	assert.NotNil(t, empty.Skipped)
}

func TestExpenseFilter_Matches(t *testing.T) {
	food := "food"
	r, _ := domain.NewDateRange(date(2024, time.May, 1), date(2024, time.May, 31))
	f := domain.ExpenseFilter{UserID: "u1", Range: r, CategoryID: &food}

	base := domain.Expense{UserID: "u1", CategoryID: "food", OccurredOn: date(2024, time.May, 10)}
	assert.True(t, f.Matches(base))

	other := base
	other.CategoryID = "rent"
	assert.False(t, f.Matches(other), "category scoped")

	otherUser := base
	otherUser.UserID = "u2"
	assert.False(t, f.Matches(otherUser))

	outside := base
	outside.OccurredOn = date(2024, time.June, 1)
	assert.False(t, f.Matches(outside))

	f.CategoryID = nil
	assert.True(t, f.Matches(other), "no category means all categories")
}
