package dto

import (
	"time"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetExchangeRateRequest defines the structure for creating or overwriting an exchange rate.
type SetExchangeRateRequest struct {
	OriginCurrencyID      string          `json:"originCurrencyID" binding:"required,max=64"`
	DestinationCurrencyID string          `json:"destinationCurrencyID" binding:"required,max=64,nefield=OriginCurrencyID"`
	Rate                  decimal.Decimal `json:"rate" swaggertype:"string" example:"0.85" binding:"required,gt=0"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	OriginCurrencyID      string          `json:"originCurrencyID"`
	DestinationCurrencyID string          `json:"destinationCurrencyID"`
	Rate                  decimal.Decimal `json:"rate" swaggertype:"string" example:"0.85"`
	LastUpdated           time.Time       `json:"lastUpdated"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		OriginCurrencyID:      rate.OriginCurrencyID,
		DestinationCurrencyID: rate.DestinationCurrencyID,
		Rate:                  rate.Rate,
		LastUpdated:           rate.LastUpdated,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ConversionQuery holds the query parameters of a conversion request.
type ConversionQuery struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"required"`
	To     string `form:"to" binding:"required"`
}

// ConversionResponse reports a converted amount.
type ConversionResponse struct {
	Amount                decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
	OriginCurrencyID      string          `json:"originCurrencyID"`
	DestinationCurrencyID string          `json:"destinationCurrencyID"`
	Converted             decimal.Decimal `json:"converted" swaggertype:"string" example:"85"`
}
