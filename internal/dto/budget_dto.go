package dto

import (
	"github.com/SscSPs/budget_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetUsageResponse reports how much of a budget has been spent, in the budget's currency.
type BudgetUsageResponse struct {
	BudgetID string          `json:"budgetID"`
	Usage    decimal.Decimal `json:"usage" swaggertype:"string" example:"80.00"`
}

// BudgetPercentageResponse reports consumption as a percentage of the limit.
type BudgetPercentageResponse struct {
	BudgetID           string          `json:"budgetID"`
	PercentageConsumed decimal.Decimal `json:"percentageConsumed" swaggertype:"string" example:"80.00"`
}

// BudgetAlertResponse reports whether the alert threshold has been reached.
type BudgetAlertResponse struct {
	BudgetID       string `json:"budgetID"`
	AlertTriggered bool   `json:"alertTriggered"`
}

// BudgetStatusResponse combines every budget metric from a single usage computation.
type BudgetStatusResponse struct {
	BudgetID           string           `json:"budgetID"`
	CurrencyID         string           `json:"currencyID"`
	Limit              decimal.Decimal  `json:"limit" swaggertype:"string"`
	Used               decimal.Decimal  `json:"used" swaggertype:"string"`
	Remaining          decimal.Decimal  `json:"remaining" swaggertype:"string"`
	PercentageConsumed decimal.Decimal  `json:"percentageConsumed" swaggertype:"string"`
	AlertThreshold     *decimal.Decimal `json:"alertThreshold,omitempty" swaggertype:"string"`
	AlertTriggered     bool             `json:"alertTriggered"`
	Complete           bool             `json:"complete"`
}

// ToBudgetStatusResponse converts a domain.BudgetStatus to its DTO.
func ToBudgetStatusResponse(s *domain.BudgetStatus) BudgetStatusResponse {
	return BudgetStatusResponse{
		BudgetID:           s.BudgetID,
		CurrencyID:         s.CurrencyID,
		Limit:              s.Limit,
		Used:               s.Used,
		Remaining:          s.Remaining,
		PercentageConsumed: s.PercentageConsumed,
		AlertThreshold:     s.AlertThreshold,
		AlertTriggered:     s.AlertTriggered,
		Complete:           s.Complete,
	}
}
