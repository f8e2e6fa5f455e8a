package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_engine/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const defaultAggregationConcurrency = 4

// aggregationService sums expenses into a single currency and derives budget metrics.
// Every call re-reads expenses, budgets and rates; nothing is cached between calls.
type aggregationService struct {
	BaseService
	expenseRepo portsrepo.ExpenseReader
	budgetRepo  portsrepo.BudgetReader
	rates       portssvc.ExchangeRateReaderSvc
	concurrency int
}

// AggregationServiceOption is a functional option for configuring the aggregation service
type AggregationServiceOption func(*aggregationService)

// WithAggregationConcurrency bounds how many rate lookups one aggregation runs at once.
func WithAggregationConcurrency(n int) AggregationServiceOption {
	return func(s *aggregationService) {
		if n < 1 {
			n = 1
		}
		s.concurrency = n
	}
}

// NewAggregationService creates the aggregation engine.
func NewAggregationService(
	expenseRepo portsrepo.ExpenseReader,
	budgetRepo portsrepo.BudgetReader,
	rates portssvc.ExchangeRateReaderSvc,
	options ...AggregationServiceOption,
) portssvc.AggregationSvcFacade {
	svc := &aggregationService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		rates:       rates,
		concurrency: defaultAggregationConcurrency,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AggregationSvcFacade = (*aggregationService)(nil)

// TotalExpenses sums the user's expenses dated within [start, end] into targetCurrencyID.
// Expenses without a rate into the target are left out, so the result is a lower bound.
func (s *aggregationService) TotalExpenses(ctx context.Context, userID, targetCurrencyID string, start, end time.Time) (decimal.Decimal, error) {
	period, err := domain.NewDateRange(start, end)
	if err != nil {
		return decimal.Zero, err
	}

	total, err := s.ExpenseTotals(ctx, portssvc.ExpenseQuery{
		UserID:           userID,
		TargetCurrencyID: targetCurrencyID,
		Range:            period,
	})
	if err != nil {
		return decimal.Zero, err
	}
	return total.Total, nil
}

// ExpenseTotals is TotalExpenses with an optional category and the list of skipped expenses.
func (s *aggregationService) ExpenseTotals(ctx context.Context, query portssvc.ExpenseQuery) (*domain.ExpenseTotal, error) {
	if query.UserID == "" || query.TargetCurrencyID == "" {
		return nil, fmt.Errorf("%w: user id and target currency id are required", apperrors.ErrValidation)
	}
	if err := query.Range.Validate(); err != nil {
		return nil, err
	}

	filter := domain.ExpenseFilter{
		UserID:     query.UserID,
		Range:      query.Range,
		CategoryID: query.CategoryID,
	}
	total, err := s.sumExpenses(ctx, filter, query.TargetCurrencyID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Expense total computed",
		slog.String("user_id", query.UserID),
		slog.String("currency_id", query.TargetCurrencyID),
		slog.Int("included", total.IncludedCount),
		slog.Int("skipped", len(total.Skipped)))
	return total, nil
}

// CurrentBudgetUsage sums the expenses the budget covers into the budget's currency.
func (s *aggregationService) CurrentBudgetUsage(ctx context.Context, budgetID string) (decimal.Decimal, error) {
	budget, err := s.loadBudget(ctx, budgetID)
	if err != nil {
		return decimal.Zero, err
	}

	usage, err := s.budgetUsage(ctx, budget)
	if err != nil {
		return decimal.Zero, err
	}
	return usage.Total, nil
}

// PercentageConsumed returns usage as a percentage of the limit, rounded half away from
// zero to two places. A non-positive limit yields zero.
func (s *aggregationService) PercentageConsumed(ctx context.Context, budgetID string) (decimal.Decimal, error) {
	budget, err := s.loadBudget(ctx, budgetID)
	if err != nil {
		return decimal.Zero, err
	}
	return s.percentageConsumed(ctx, budget)
}

// IsAlertTriggered reports whether consumption reached the budget's alert threshold.
// An unknown budget or a budget without a threshold is never alerting.
func (s *aggregationService) IsAlertTriggered(ctx context.Context, budgetID string) (bool, error) {
	budget, err := s.loadBudget(ctx, budgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if !budget.HasAlertThreshold() {
		return false, nil
	}

	percentage, err := s.percentageConsumed(ctx, budget)
	if err != nil {
		return false, err
	}
	return domain.AlertTriggered(percentage, budget.AlertThreshold), nil
}

// BudgetStatus computes usage once and derives every metric from it.
func (s *aggregationService) BudgetStatus(ctx context.Context, budgetID string) (*domain.BudgetStatus, error) {
	budget, err := s.loadBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	usage, err := s.budgetUsage(ctx, budget)
	if err != nil {
		return nil, err
	}

	percentage := domain.PercentageOf(usage.Total, budget.Limit)
	return &domain.BudgetStatus{
		BudgetID:           budget.BudgetID,
		CurrencyID:         budget.CurrencyID,
		Limit:              budget.Limit,
		Used:               usage.Total,
		Remaining:          budget.Limit.Sub(usage.Total),
		PercentageConsumed: percentage,
		AlertThreshold:     budget.AlertThreshold,
		AlertTriggered:     domain.AlertTriggered(percentage, budget.AlertThreshold),
		Complete:           usage.IsComplete(),
	}, nil
}

func (s *aggregationService) percentageConsumed(ctx context.Context, budget *domain.Budget) (decimal.Decimal, error) {
	if !budget.Limit.IsPositive() {
		return decimal.Zero, nil
	}
	usage, err := s.budgetUsage(ctx, budget)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.PercentageOf(usage.Total, budget.Limit), nil
}

func (s *aggregationService) loadBudget(ctx context.Context, budgetID string) (*domain.Budget, error) {
	if budgetID == "" {
		return nil, fmt.Errorf("%w: budget id is required", apperrors.ErrValidation)
	}
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget %s: %w", budgetID, err)
	}
	return budget, nil
}

func (s *aggregationService) budgetUsage(ctx context.Context, budget *domain.Budget) (*domain.ExpenseTotal, error) {
	usage, err := s.sumExpenses(ctx, budget.ExpenseFilter(), budget.CurrencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute usage for budget %s: %w", budget.BudgetID, err)
	}
	return usage, nil
}

// sumExpenses reads, converts and folds. Any failure other than a missing rate, including
// cancellation, fails the whole call rather than returning a partial sum.
func (s *aggregationService) sumExpenses(ctx context.Context, filter domain.ExpenseFilter, targetCurrencyID string) (*domain.ExpenseTotal, error) {
	expenses, err := s.expenseRepo.FindExpenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}

	rates, err := s.resolveRates(ctx, expenses, targetCurrencyID)
	if err != nil {
		return nil, err
	}

	outcomes := make([]domain.ConversionOutcome, 0, len(expenses))
	for _, e := range expenses {
		if e.CurrencyID == targetCurrencyID {
			outcomes = append(outcomes, domain.Converted(e, e.Amount))
			continue
		}
		rate, ok := rates[e.CurrencyID]
		if !ok {
			s.LogDebug(ctx, "Expense skipped, no exchange rate",
				slog.String("expense_id", e.ExpenseID),
				slog.String("origin", e.CurrencyID),
				slog.String("destination", targetCurrencyID))
			outcomes = append(outcomes, domain.Skipped(e, domain.SkipReasonRateNotFound))
			continue
		}
		outcomes = append(outcomes, domain.Converted(e, rate.Convert(e.Amount)))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := domain.FoldOutcomes(targetCurrencyID, outcomes)
	return &total, nil
}

// resolveRates fetches the rate into targetCurrencyID for each distinct foreign currency,
// once per call. Pairs without a rate are absent from the returned map.
func (s *aggregationService) resolveRates(ctx context.Context, expenses []domain.Expense, targetCurrencyID string) (map[string]*domain.ExchangeRate, error) {
	seen := make(map[string]struct{})
	origins := make([]string, 0)
	for _, e := range expenses {
		if e.CurrencyID == targetCurrencyID {
			continue
		}
		if _, ok := seen[e.CurrencyID]; ok {
			continue
		}
		seen[e.CurrencyID] = struct{}{}
		origins = append(origins, e.CurrencyID)
	}
	sort.Strings(origins)

	found := make([]*domain.ExchangeRate, len(origins))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, origin := range origins {
		i, origin := i, origin
		g.Go(func() error {
			rate, err := s.rates.GetExchangeRate(gctx, origin, targetCurrencyID)
			if err != nil {
				if errors.Is(err, apperrors.ErrRateNotFound) {
					return nil
				}
				return fmt.Errorf("failed to resolve rate %s->%s: %w", origin, targetCurrencyID, err)
			}
			found[i] = rate
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rates := make(map[string]*domain.ExchangeRate, len(origins))
	for i, origin := range origins {
		if found[i] != nil {
			rates[origin] = found[i]
		}
	}
	return rates, nil
}
