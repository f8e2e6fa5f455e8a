package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBudget_Validate(t *testing.T) {
	period := domain.DateRange{Start: date(2024, time.January, 1), End: date(2024, time.January, 31)}

	tests := []struct {
		name    string
		budget  domain.Budget
		wantErr bool
	}{
		{name: "valid without threshold", budget: domain.Budget{BudgetID: "b1", Period: period, Limit: dec("100")}},
		{name: "valid with threshold", budget: domain.Budget{BudgetID: "b1", Period: period, Limit: dec("100"), AlertThreshold: decPtr("80")}},
		{name: "threshold above 100", budget: domain.Budget{BudgetID: "b1", Period: period, AlertThreshold: decPtr("100.5")}, wantErr: true},
		{name: "negative threshold", budget: domain.Budget{BudgetID: "b1", Period: period, AlertThreshold: decPtr("-1")}, wantErr: true},
		{name: "inverted period", budget: domain.Budget{BudgetID: "b1", Period: domain.DateRange{Start: period.End, End: period.Start}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.budget.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBudget_ExpenseFilter(t *testing.T) {
	cat := "travel"
	b := domain.Budget{
		UserID:     "u1",
		CategoryID: &cat,
		Period:     domain.DateRange{Start: date(2024, time.January, 1), End: date(2024, time.January, 31)},
	}

	f := b.ExpenseFilter()
	assert.Equal(t, "u1", f.UserID)
	assert.Equal(t, &cat, f.CategoryID)
	assert.Equal(t, b.Period, f.Range)
	assert.False(t, b.HasAlertThreshold())
}
