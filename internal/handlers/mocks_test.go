package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	portssvc "github.com/SscSPs/budget_engine/internal/core/ports/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, originCurrencyID, destinationCurrencyID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, originCurrencyID, destinationCurrencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) SetExchangeRate(ctx context.Context, originCurrencyID, destinationCurrencyID string, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, originCurrencyID, destinationCurrencyID, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ConvertAmount(ctx context.Context, amount decimal.Decimal, originCurrencyID, destinationCurrencyID string) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, originCurrencyID, destinationCurrencyID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrency(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock AggregationService ---
type MockAggregationService struct {
	mock.Mock
}

func (m *MockAggregationService) TotalExpenses(ctx context.Context, userID, targetCurrencyID string, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, targetCurrencyID, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregationService) ExpenseTotals(ctx context.Context, query portssvc.ExpenseQuery) (*domain.ExpenseTotal, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseTotal), args.Error(1)
}

func (m *MockAggregationService) CurrentBudgetUsage(ctx context.Context, budgetID string) (decimal.Decimal, error) {
	args := m.Called(ctx, budgetID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregationService) PercentageConsumed(ctx context.Context, budgetID string) (decimal.Decimal, error) {
	args := m.Called(ctx, budgetID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAggregationService) IsAlertTriggered(ctx context.Context, budgetID string) (bool, error) {
	args := m.Called(ctx, budgetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAggregationService) BudgetStatus(ctx context.Context, budgetID string) (*domain.BudgetStatus, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetStatus), args.Error(1)
}

var _ portssvc.AggregationSvcFacade = (*MockAggregationService)(nil)

// generateTestToken creates a signed JWT for the given user.
func generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "budget-engine-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

func decimalEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
