package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	portssvc "github.com/SscSPs/budget_engine/internal/core/ports/services"
	"github.com/SscSPs/budget_engine/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencyRepo *MockCurrencyReader
	now              time.Time
	service          portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyReader)
	suite.now = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewExchangeRateService(
		suite.mockRateRepo,
		services.WithCurrencyValidation(suite.mockCurrencyRepo),
		services.WithClock(func() time.Time { return suite.now }),
	)
}

// --- Test Cases ---

func (suite *ExchangeRateServiceTestSuite) TestSetExchangeRate_Success() {
	ctx := context.Background()
	saved := &domain.ExchangeRate{OriginCurrencyID: "usd", DestinationCurrencyID: "eur", Rate: dec("0.85"), LastUpdated: suite.now}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "usd").Return(&domain.Currency{CurrencyID: "usd"}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "eur").Return(&domain.Currency{CurrencyID: "eur"}, nil).Once()
	suite.mockRateRepo.On("UpsertExchangeRate", ctx, "usd", "eur", dec("0.85"), suite.now).Return(saved, nil).Once()

	rate, err := suite.service.SetExchangeRate(ctx, "usd", "eur", dec("0.85"))

	suite.Require().NoError(err)
	suite.Equal(saved, rate)
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestSetExchangeRate_NonPositiveRate() {
	ctx := context.Background()

	for _, rate := range []string{"0", "-1.5"} {
		_, err := suite.service.SetExchangeRate(ctx, "usd", "eur", dec(rate))
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Contains(err.Error(), "must be positive")
	}
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "UpsertExchangeRate", 0)
}

func (suite *ExchangeRateServiceTestSuite) TestSetExchangeRate_SameCurrency() {
	_, err := suite.service.SetExchangeRate(context.Background(), "usd", "usd", dec("1"))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "cannot be the same")
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "UpsertExchangeRate", 0)
}

func (suite *ExchangeRateServiceTestSuite) TestSetExchangeRate_UnknownCurrency() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "usd").Return(&domain.Currency{CurrencyID: "usd"}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "xxx").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SetExchangeRate(ctx, "usd", "xxx", dec("2"))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "destination currency 'xxx' not found")
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "UpsertExchangeRate", 0)
}

func (suite *ExchangeRateServiceTestSuite) TestSetExchangeRate_StorageFailure() {
	ctx := context.Background()
	dbErr := errors.New("connection reset")
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, mock.Anything).Return(&domain.Currency{}, nil)
	suite.mockRateRepo.On("UpsertExchangeRate", ctx, "usd", "eur", dec("2"), suite.now).Return(nil, dbErr).Once()

	_, err := suite.service.SetExchangeRate(ctx, "usd", "eur", dec("2"))

	suite.ErrorIs(err, dbErr)
	suite.NotErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestSetExchangeRate_DoesNotWriteReversePair() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, mock.Anything).Return(&domain.Currency{}, nil)
	suite.mockRateRepo.On("UpsertExchangeRate", ctx, "usd", "eur", dec("2"), suite.now).
		Return(&domain.ExchangeRate{OriginCurrencyID: "usd", DestinationCurrencyID: "eur", Rate: dec("2")}, nil).Once()

	_, err := suite.service.SetExchangeRate(ctx, "usd", "eur", dec("2"))

	suite.Require().NoError(err)
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "UpsertExchangeRate", 1)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "UpsertExchangeRate", ctx, "eur", "usd", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestConvertAmount_Identity() {
	amount := dec("123.456")

	converted, err := suite.service.ConvertAmount(context.Background(), amount, "usd", "usd")

	suite.Require().NoError(err)
	suite.True(amount.Equal(converted))
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "FindExchangeRate", 0)
}

func (suite *ExchangeRateServiceTestSuite) TestConvertAmount_Success() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindExchangeRate", ctx, "usd", "eur").
		Return(&domain.ExchangeRate{OriginCurrencyID: "usd", DestinationCurrencyID: "eur", Rate: dec("0.85")}, nil).Once()

	converted, err := suite.service.ConvertAmount(ctx, dec("100"), "usd", "eur")

	suite.Require().NoError(err)
	suite.True(dec("85").Equal(converted), "got %s", converted)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestConvertAmount_DecimalPrecision() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindExchangeRate", ctx, "usd", "eur").
		Return(&domain.ExchangeRate{Rate: dec("0.1")}, nil)

	total := dec("0")
	for i := 0; i < 3; i++ {
		converted, err := suite.service.ConvertAmount(ctx, dec("1"), "usd", "eur")
		suite.Require().NoError(err)
		total = total.Add(converted)
	}
	suite.Equal("0.3", total.String())
}

func (suite *ExchangeRateServiceTestSuite) TestConvertAmount_NoImplicitInversion() {
	ctx := context.Background()
	// Only A->B exists in storage; B->A must not be derived from it.
	suite.mockRateRepo.On("FindExchangeRate", ctx, "b", "a").
		Return(nil, apperrors.NewRateNotFoundError("no rate b->a")).Once()

	_, err := suite.service.ConvertAmount(ctx, dec("10"), "b", "a")

	suite.ErrorIs(err, apperrors.ErrRateNotFound)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindExchangeRate", ctx, "a", "b")
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_Validation() {
	_, err := suite.service.GetExchangeRate(context.Background(), "", "eur")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRateRepo.On("ListExchangeRates", ctx).Return(nil, nil).Once()

	rates, err := suite.service.ListExchangeRates(ctx)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
}

// --- Run Suite ---
func TestExchangeRateService(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
