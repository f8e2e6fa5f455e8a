package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/budget_engine/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert AMOUNT FROM TO",
	Short: "Convert an amount using the direct exchange rate",
	Args:  cobra.ExactArgs(3),
	RunE:  withApp(runConvert),
}

var setRateCmd = &cobra.Command{
	Use:   "set-rate ORIGIN DESTINATION RATE",
	Short: "Create or overwrite the rate for an ordered currency pair",
	Args:  cobra.ExactArgs(3),
	RunE:  withApp(runSetRate),
}

var rateCmd = &cobra.Command{
	Use:   "rate ORIGIN DESTINATION",
	Short: "Show the stored rate for an ordered currency pair",
	Args:  cobra.ExactArgs(2),
	RunE:  withApp(runRate),
}

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "List every stored exchange rate",
	Args:  cobra.NoArgs,
	RunE:  withApp(runRates),
}

func init() {
	rootCmd.AddCommand(convertCmd, setRateCmd, rateCmd, ratesCmd)
}

func runConvert(cmd *cobra.Command, a *app, args []string) error {
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}
	converted, err := a.services.ExchangeRate.ConvertAmount(cmd.Context(), amount, args[1], args[2])
	if err != nil {
		return err
	}
	resp := dto.ConversionResponse{
		Amount:                amount,
		OriginCurrencyID:      args[1],
		DestinationCurrencyID: args[2],
		Converted:             converted,
	}
	return render(cmd.OutOrStdout(), resp, fmt.Sprintf("%s %s = %s %s", amount, args[1], converted, args[2]))
}

func runSetRate(cmd *cobra.Command, a *app, args []string) error {
	rate, err := decimal.NewFromString(args[2])
	if err != nil {
		return fmt.Errorf("invalid rate %q", args[2])
	}
	saved, err := a.services.ExchangeRate.SetExchangeRate(cmd.Context(), args[0], args[1], rate)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), dto.ToExchangeRateResponse(saved), formatRate(dto.ToExchangeRateResponse(saved)))
}

func runRate(cmd *cobra.Command, a *app, args []string) error {
	rate, err := a.services.ExchangeRate.GetExchangeRate(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), dto.ToExchangeRateResponse(rate), formatRate(dto.ToExchangeRateResponse(rate)))
}

func runRates(cmd *cobra.Command, a *app, _ []string) error {
	rates, err := a.services.ExchangeRate.ListExchangeRates(cmd.Context())
	if err != nil {
		return err
	}
	resp := dto.ToListExchangeRateResponse(rates)
	lines := make([]string, 0, len(resp))
	for _, r := range resp {
		lines = append(lines, formatRate(r))
	}
	if len(lines) == 0 {
		lines = append(lines, "No exchange rates stored.")
	}
	return render(cmd.OutOrStdout(), resp, strings.Join(lines, "\n"))
}

func formatRate(r dto.ExchangeRateResponse) string {
	return fmt.Sprintf("%s -> %s  %s  (updated %s)",
		r.OriginCurrencyID, r.DestinationCurrencyID, r.Rate, r.LastUpdated.Format("2006-01-02 15:04:05"))
}
