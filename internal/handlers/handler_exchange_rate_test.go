package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/budget_engine/internal/apperrors"
	"github.com/SscSPs/budget_engine/internal/core/domain"
	"github.com/SscSPs/budget_engine/internal/handlers"
	"github.com/SscSPs/budget_engine/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExchangeRateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockExchangeRateService
	token       string
}

func (suite *ExchangeRateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockService = new(MockExchangeRateService)
	handlers.RegisterExchangeRateRoutes(suite.router.Group("/api/v1"), suite.mockService)
	suite.token = generateTestToken("user-1")
}

func (suite *ExchangeRateHandlerTestSuite) do(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ExchangeRateHandlerTestSuite) TestSetExchangeRate_Success() {
	saved := &domain.ExchangeRate{
		OriginCurrencyID:      "usd",
		DestinationCurrencyID: "eur",
		Rate:                  decimal.RequireFromString("0.92"),
		LastUpdated:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.mockService.On("SetExchangeRate", mock.Anything, "usd", "eur", decimalEq("0.92")).Return(saved, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/exchange-rates", map[string]string{
		"originCurrencyID":      "usd",
		"destinationCurrencyID": "eur",
		"rate":                  "0.92",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("0.92", resp["rate"])
	suite.Equal("usd", resp["originCurrencyID"])
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExchangeRateHandlerTestSuite) TestSetExchangeRate_RejectsNonPositiveRate() {
	for _, rate := range []string{"0", "-1.5"} {
		w := suite.do(http.MethodPost, "/api/v1/exchange-rates", map[string]string{
			"originCurrencyID":      "usd",
			"destinationCurrencyID": "eur",
			"rate":                  rate,
		})
		suite.Equal(http.StatusBadRequest, w.Code, "rate %s", rate)
	}
	suite.mockService.AssertNumberOfCalls(suite.T(), "SetExchangeRate", 0)
}

func (suite *ExchangeRateHandlerTestSuite) TestSetExchangeRate_RejectsSamePair() {
	w := suite.do(http.MethodPost, "/api/v1/exchange-rates", map[string]string{
		"originCurrencyID":      "usd",
		"destinationCurrencyID": "usd",
		"rate":                  "1",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNumberOfCalls(suite.T(), "SetExchangeRate", 0)
}

func (suite *ExchangeRateHandlerTestSuite) TestSetExchangeRate_ServiceValidationError() {
	suite.mockService.On("SetExchangeRate", mock.Anything, "usd", "xxx", mock.Anything).
		Return(nil, apperrors.NewValidationError("destination currency 'xxx' not found")).Once()

	w := suite.do(http.MethodPost, "/api/v1/exchange-rates", map[string]string{
		"originCurrencyID":      "usd",
		"destinationCurrencyID": "xxx",
		"rate":                  "2",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "xxx")
}

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRate_NotFound() {
	suite.mockService.On("GetExchangeRate", mock.Anything, "eur", "usd").
		Return(nil, apperrors.NewRateNotFoundError("no rate eur->usd")).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates/eur/usd", nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "Exchange rate not found")
}

func (suite *ExchangeRateHandlerTestSuite) TestListExchangeRates_Empty() {
	suite.mockService.On("ListExchangeRates", mock.Anything).Return([]domain.ExchangeRate{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/exchange-rates", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func (suite *ExchangeRateHandlerTestSuite) TestConvert_Success() {
	suite.mockService.On("ConvertAmount", mock.Anything, decimalEq("100"), "usd", "eur").
		Return(decimal.RequireFromString("92"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/conversions?amount=100&from=usd&to=eur", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("92", resp["converted"])
}

func (suite *ExchangeRateHandlerTestSuite) TestConvert_InvalidAmount() {
	w := suite.do(http.MethodGet, "/api/v1/conversions?amount=ten&from=usd&to=eur", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNumberOfCalls(suite.T(), "ConvertAmount", 0)
}

func (suite *ExchangeRateHandlerTestSuite) TestConvert_StorageFailureIsInternal() {
	suite.mockService.On("ConvertAmount", mock.Anything, mock.Anything, "usd", "eur").
		Return(decimal.Zero, assertErr("connection reset")).Once()

	w := suite.do(http.MethodGet, "/api/v1/conversions?amount=1&from=usd&to=eur", nil)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
}

func (suite *ExchangeRateHandlerTestSuite) TestRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/exchange-rates", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestExchangeRateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateHandlerTestSuite))
}
