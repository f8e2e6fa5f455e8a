package utils_test

import (
	"testing"

	"github.com/SscSPs/budget_engine/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"135.5", "135.50"},
		{"10", "10.00"},
		{"0.005", "0.01"},
		{"-0.005", "-0.01"},
		{"333.333", "333.33"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatPercentageAndCurrency(t *testing.T) {
	assert.Equal(t, "67.75%", utils.FormatPercentage(decimal.RequireFromString("67.75")))
	assert.Equal(t, "110.00 usd", utils.FormatWithCurrency(decimal.NewFromInt(110), "usd"))
}
