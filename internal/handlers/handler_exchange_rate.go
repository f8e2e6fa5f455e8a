package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/budget_engine/internal/core/ports/services"
	"github.com/SscSPs/budget_engine/internal/dto"
	"github.com/SscSPs/budget_engine/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// exchangeRateHandler handles HTTP requests related to exchange rates and conversions.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// RegisterExchangeRateRoutes registers routes related to exchange rates and conversions.
func RegisterExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	registerValidators()
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.setExchangeRate)
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/:origin/:destination", h.getExchangeRate)
	}
	rg.GET("/conversions", h.convert)
}

// setExchangeRate godoc
// @Summary Set an exchange rate
// @Description Creates the rate for an ordered currency pair or overwrites the existing one. The reverse pair is not affected.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.SetExchangeRateRequest true "Exchange Rate details"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to set exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) setExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(
		slog.String("origin", req.OriginCurrencyID),
		slog.String("destination", req.DestinationCurrencyID))
	logger.Info("Received request to set exchange rate", slog.String("rate", req.Rate.String()))

	saved, err := h.exchangeRateService.SetExchangeRate(c.Request.Context(), req.OriginCurrencyID, req.DestinationCurrencyID, req.Rate)
	if err != nil {
		respondWithError(c, logger, err, "Failed to set exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(saved))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Lists every stored directional rate
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the stored rate for exactly origin->destination. The inverse rate is never used.
// @Tags exchange rates
// @Produce  json
// @Param   origin      path string true "Origin currency ID"
// @Param   destination path string true "Destination currency ID"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{origin}/{destination} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("origin", c.Param("origin")),
		slog.String("destination", c.Param("destination")))

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), c.Param("origin"), c.Param("destination"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount using the direct rate. Identical currencies return the amount unchanged.
// @Tags exchange rates
// @Produce  json
// @Param   amount query string true "Decimal amount" example(100.00)
// @Param   from   query string true "Origin currency ID"
// @Param   to     query string true "Destination currency ID"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid amount or missing parameters"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to convert amount"
// @Security BearerAuth
// @Router /conversions [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ConversionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	amount, err := decimal.NewFromString(query.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount: " + query.Amount})
		return
	}

	converted, err := h.exchangeRateService.ConvertAmount(c.Request.Context(), amount, query.From, query.To)
	if err != nil {
		respondWithError(c, logger.With(slog.String("origin", query.From), slog.String("destination", query.To)),
			err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ConversionResponse{
		Amount:                amount,
		OriginCurrencyID:      query.From,
		DestinationCurrencyID: query.To,
		Converted:             converted,
	})
}
