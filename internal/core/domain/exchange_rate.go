package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the single stored rate for one ordered currency pair.
// A rate for A->B says nothing about B->A.
type ExchangeRate struct {
	OriginCurrencyID      string          `json:"originCurrencyID"`
	DestinationCurrencyID string          `json:"destinationCurrencyID"`
	Rate                  decimal.Decimal `json:"rate"`
	LastUpdated           time.Time       `json:"lastUpdated"`
}

// CurrencyPair identifies an ordered (origin, destination) pair.
type CurrencyPair struct {
	Origin      string
	Destination string
}

// Pair returns the ordered pair this rate is stored under.
func (r ExchangeRate) Pair() CurrencyPair {
	return CurrencyPair{Origin: r.OriginCurrencyID, Destination: r.DestinationCurrencyID}
}

// Convert multiplies amount by the stored rate.
func (r ExchangeRate) Convert(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(r.Rate)
}
