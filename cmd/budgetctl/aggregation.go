package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/budget_engine/internal/core/domain"
	portssvc "github.com/SscSPs/budget_engine/internal/core/ports/services"
	"github.com/SscSPs/budget_engine/internal/dto"
	"github.com/SscSPs/budget_engine/internal/utils"
	"github.com/spf13/cobra"
)

var (
	flagUser     string
	flagCurrency string
	flagStart    string
	flagEnd      string
	flagCategory string
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Total a user's expenses in one currency",
	Long:  "Total a user's expenses dated within [--start, --end] in --currency. Expenses without a direct rate are skipped and listed.",
	Args:  cobra.NoArgs,
	RunE:  withApp(runTotal),
}

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Inspect budget consumption",
}

var budgetUsageCmd = &cobra.Command{
	Use:   "usage BUDGET_ID",
	Short: "Current usage in the budget's currency",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		usage, err := a.services.Aggregation.CurrentBudgetUsage(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), dto.BudgetUsageResponse{BudgetID: args[0], Usage: usage}, utils.FormatMoney(usage))
	}),
}

var budgetPercentageCmd = &cobra.Command{
	Use:   "percentage BUDGET_ID",
	Short: "Percentage of the limit consumed",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		pct, err := a.services.Aggregation.PercentageConsumed(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), dto.BudgetPercentageResponse{BudgetID: args[0], PercentageConsumed: pct},
			utils.FormatPercentage(pct))
	}),
}

var budgetAlertCmd = &cobra.Command{
	Use:   "alert BUDGET_ID",
	Short: "Whether the alert threshold has been reached",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		triggered, err := a.services.Aggregation.IsAlertTriggered(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), dto.BudgetAlertResponse{BudgetID: args[0], AlertTriggered: triggered},
			fmt.Sprintf("%t", triggered))
	}),
}

var budgetStatusCmd = &cobra.Command{
	Use:   "status BUDGET_ID",
	Short: "Usage, remaining, percentage and alert state",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		status, err := a.services.Aggregation.BudgetStatus(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), dto.ToBudgetStatusResponse(status), formatStatus(status))
	}),
}

func init() {
	totalCmd.Flags().StringVarP(&flagUser, "user", "u", "", "User ID (required)")
	totalCmd.Flags().StringVarP(&flagCurrency, "currency", "c", "", "Target currency ID (required)")
	totalCmd.Flags().StringVar(&flagStart, "start", "", "Start date YYYY-MM-DD, inclusive (required)")
	totalCmd.Flags().StringVar(&flagEnd, "end", "", "End date YYYY-MM-DD, inclusive (required)")
	totalCmd.Flags().StringVar(&flagCategory, "category", "", "Restrict to one category")
	for _, name := range []string{"user", "currency", "start", "end"} {
		_ = totalCmd.MarkFlagRequired(name)
	}

	budgetCmd.AddCommand(budgetUsageCmd, budgetPercentageCmd, budgetAlertCmd, budgetStatusCmd)
	rootCmd.AddCommand(totalCmd, budgetCmd)
}

func runTotal(cmd *cobra.Command, a *app, _ []string) error {
	period, err := domain.ParseDateRange(flagStart, flagEnd)
	if err != nil {
		return err
	}
	var category *string
	if flagCategory != "" {
		category = &flagCategory
	}

	total, err := a.services.Aggregation.ExpenseTotals(cmd.Context(), portssvc.ExpenseQuery{
		UserID:           flagUser,
		TargetCurrencyID: flagCurrency,
		Range:            period,
		CategoryID:       category,
	})
	if err != nil {
		return err
	}

	resp := dto.ToExpenseTotalResponse(flagUser, period, category, total)
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d expenses)", utils.FormatWithCurrency(total.Total, total.CurrencyID), total.IncludedCount)
	for _, s := range total.Skipped {
		fmt.Fprintf(&b, "\n  skipped %s: %s %s (%s)", s.ExpenseID, s.Amount, s.CurrencyID, s.Reason)
	}
	return render(cmd.OutOrStdout(), resp, b.String())
}

func formatStatus(s *domain.BudgetStatus) string {
	var b strings.Builder
	fmt.Fprintf(&b, "budget     %s\n", s.BudgetID)
	fmt.Fprintf(&b, "used       %s / %s\n", utils.FormatMoney(s.Used), utils.FormatWithCurrency(s.Limit, s.CurrencyID))
	fmt.Fprintf(&b, "remaining  %s\n", utils.FormatMoney(s.Remaining))
	fmt.Fprintf(&b, "consumed   %s\n", utils.FormatPercentage(s.PercentageConsumed))
	if s.AlertThreshold != nil {
		fmt.Fprintf(&b, "alert      %t (threshold %s%%)", s.AlertTriggered, s.AlertThreshold.String())
	} else {
		b.WriteString("alert      none")
	}
	if !s.Complete {
		b.WriteString("\nwarning    some expenses had no exchange rate and were left out")
	}
	return b.String()
}
