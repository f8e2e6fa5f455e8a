// Package seed loads reference data (currencies, rates, expenses, budgets) from a YAML or
// JSON fixture and writes it into any storage backend.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// File is the fixture layout. Amounts and rates are decimal strings and dates are YYYY-MM-DD.
type File struct {
	Currencies []Currency     `yaml:"currencies" json:"currencies"`
	Rates      []ExchangeRate `yaml:"rates" json:"rates"`
	Expenses   []Expense      `yaml:"expenses" json:"expenses"`
	Budgets    []Budget       `yaml:"budgets" json:"budgets"`
}

type Currency struct {
	ID     string `yaml:"id" json:"id"`
	Code   string `yaml:"code" json:"code"`
	Name   string `yaml:"name" json:"name"`
	Symbol string `yaml:"symbol" json:"symbol"`
}

type ExchangeRate struct {
	Origin      string `yaml:"origin" json:"origin"`
	Destination string `yaml:"destination" json:"destination"`
	Rate        string `yaml:"rate" json:"rate"`
}

type Expense struct {
	ID         string `yaml:"id" json:"id"`
	UserID     string `yaml:"user_id" json:"user_id"`
	CategoryID string `yaml:"category_id" json:"category_id"`
	CurrencyID string `yaml:"currency_id" json:"currency_id"`
	Amount     string `yaml:"amount" json:"amount"`
	Date       string `yaml:"date" json:"date"`
}

type Budget struct {
	ID             string  `yaml:"id" json:"id"`
	UserID         string  `yaml:"user_id" json:"user_id"`
	CategoryID     *string `yaml:"category_id" json:"category_id"`
	CurrencyID     string  `yaml:"currency_id" json:"currency_id"`
	Limit          string  `yaml:"limit" json:"limit"`
	StartDate      string  `yaml:"start_date" json:"start_date"`
	EndDate        string  `yaml:"end_date" json:"end_date"`
	AlertThreshold *string `yaml:"alert_threshold" json:"alert_threshold"`
}

// Records is a parsed and validated fixture.
type Records struct {
	Currencies []domain.Currency
	Rates      []domain.ExchangeRate
	Expenses   []domain.Expense
	Budgets    []domain.Budget
}

// Writer is implemented by every backend that can receive fixtures.
type Writer interface {
	SaveCurrency(ctx context.Context, c domain.Currency) error
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
	SaveExpense(ctx context.Context, e domain.Expense) error
	SaveBudget(ctx context.Context, b domain.Budget) error
}

// LoadFile reads a fixture; the format is chosen by extension.
func LoadFile(filePath string, now time.Time) (*Records, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}

	var file File
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &file); err != nil {
			return nil, fmt.Errorf("error parsing YAML seed file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &file); err != nil {
			return nil, fmt.Errorf("error parsing JSON seed file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed file format: %s", filepath.Ext(filePath))
	}

	return file.Records(now)
}

// Records converts and validates every entry. now stamps audit and registration fields.
func (f File) Records(now time.Time) (*Records, error) {
	records := &Records{
		Currencies: make([]domain.Currency, 0, len(f.Currencies)),
		Rates:      make([]domain.ExchangeRate, 0, len(f.Rates)),
		Expenses:   make([]domain.Expense, 0, len(f.Expenses)),
		Budgets:    make([]domain.Budget, 0, len(f.Budgets)),
	}

	for _, c := range f.Currencies {
		if c.ID == "" {
			return nil, fmt.Errorf("seed currency %q has no id", c.Code)
		}
		records.Currencies = append(records.Currencies, domain.Currency{
			CurrencyID: c.ID,
			Code:       strings.ToUpper(c.Code),
			Name:       c.Name,
			Symbol:     c.Symbol,
			IsActive:   true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     "seed",
				LastUpdatedAt: now,
				LastUpdatedBy: "seed",
			},
		})
	}

	for _, r := range f.Rates {
		rate, err := decimal.NewFromString(r.Rate)
		if err != nil {
			return nil, fmt.Errorf("seed rate %s->%s: %w", r.Origin, r.Destination, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("seed rate %s->%s must be positive", r.Origin, r.Destination)
		}
		records.Rates = append(records.Rates, domain.ExchangeRate{
			OriginCurrencyID:      r.Origin,
			DestinationCurrencyID: r.Destination,
			Rate:                  rate,
			LastUpdated:           now,
		})
	}

	for _, e := range f.Expenses {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return nil, fmt.Errorf("seed expense %s amount: %w", e.ID, err)
		}
		occurredOn, err := time.Parse(domain.DateLayout, e.Date)
		if err != nil {
			return nil, fmt.Errorf("seed expense %s date: %w", e.ID, err)
		}
		records.Expenses = append(records.Expenses, domain.Expense{
			ExpenseID:    e.ID,
			UserID:       e.UserID,
			CategoryID:   e.CategoryID,
			CurrencyID:   e.CurrencyID,
			Amount:       amount,
			OccurredOn:   occurredOn,
			RegisteredAt: now,
		})
	}

	for _, b := range f.Budgets {
		budget, err := b.toDomain()
		if err != nil {
			return nil, err
		}
		records.Budgets = append(records.Budgets, budget)
	}
	return records, nil
}

func (b Budget) toDomain() (domain.Budget, error) {
	limit, err := decimal.NewFromString(b.Limit)
	if err != nil {
		return domain.Budget{}, fmt.Errorf("seed budget %s limit: %w", b.ID, err)
	}
	period, err := domain.ParseDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return domain.Budget{}, fmt.Errorf("seed budget %s: %w", b.ID, err)
	}
	budget := domain.Budget{
		BudgetID:   b.ID,
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		CurrencyID: b.CurrencyID,
		Limit:      limit,
		Period:     period,
	}
	if b.AlertThreshold != nil {
		threshold, err := decimal.NewFromString(*b.AlertThreshold)
		if err != nil {
			return domain.Budget{}, fmt.Errorf("seed budget %s alert threshold: %w", b.ID, err)
		}
		budget.AlertThreshold = &threshold
	}
	if err := budget.Validate(); err != nil {
		return domain.Budget{}, err
	}
	return budget, nil
}

// Apply writes currencies first so foreign keys in SQL backends resolve.
func (r *Records) Apply(ctx context.Context, w Writer) error {
	for _, c := range r.Currencies {
		if err := w.SaveCurrency(ctx, c); err != nil {
			return err
		}
	}
	for _, rate := range r.Rates {
		if err := w.SaveExchangeRate(ctx, rate); err != nil {
			return err
		}
	}
	for _, e := range r.Expenses {
		if err := w.SaveExpense(ctx, e); err != nil {
			return err
		}
	}
	for _, b := range r.Budgets {
		if err := w.SaveBudget(ctx, b); err != nil {
			return err
		}
	}
	return nil
}
