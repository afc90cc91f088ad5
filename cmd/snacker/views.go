package main

import (
	"fmt"

	"github.com/Veraticus/snacker/internal/appstate"
	"github.com/Veraticus/snacker/internal/cli"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func summaryCmd(a *app) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expenses and balance for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := appstate.FromContext(cmd.Context())

			m, err := parseMonth(month, state.Now())
			if err != nil {
				return err
			}
			s := state.MonthlySummary(m)

			balance := cli.IncomeStyle.Render(a.currency.Format(s.Balance))
			if s.Balance.IsNegative() {
				balance = cli.ExpenseStyle.Render(a.currency.Format(s.Balance))
			}
			content := fmt.Sprintf("Income:   %s\nExpenses: %s\nBalance:  %s",
				cli.IncomeStyle.Render(a.currency.Format(s.Income)),
				cli.ExpenseStyle.Render(a.currency.Format(s.Expenses)),
				balance)
			say(cmd, "%s", cli.RenderBox(cli.ChartIcon+" "+m.Format("January 2006"), content))
			return nil
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", "", "month as yyyy-MM (default this month)")
	return cmd
}

func distributionCmd(a *app) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Break a month's expenses down by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := appstate.FromContext(cmd.Context())

			m, err := parseMonth(month, state.Now())
			if err != nil {
				return err
			}

			entries := state.MonthlyExpenseDistribution(m)
			say(cmd, "%s", cli.FormatTitle("Expenses for "+m.Format("January 2006")))
			if len(entries) == 0 {
				say(cmd, "No expenses recorded for this month.")
				return nil
			}

			total := decimal.Zero
			for _, e := range entries {
				total = total.Add(e.Value)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				share := e.Value.Div(total).Mul(decimal.NewFromInt(100))
				rows = append(rows, []string{
					e.Name,
					a.currency.Format(e.Value),
					share.StringFixed(1) + "%",
					e.Fill,
				})
			}
			say(cmd, "%s", cli.RenderTable([]string{"Category", "Amount", "Share", "Color"}, rows))
			say(cmd, "Total: %s", a.currency.Format(total))
			return nil
		},
	}
	cmd.Flags().StringVarP(&month, "month", "m", "", "month as yyyy-MM (default this month)")
	return cmd
}

func monthsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List the months that have transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := appstate.FromContext(cmd.Context())

			months := state.UniqueMonthsWithTransactions()
			if len(months) == 0 {
				say(cmd, "No transactions yet.")
				return nil
			}

			rows := make([][]string, 0, len(months))
			for _, m := range months {
				s := state.MonthlySummary(m)
				rows = append(rows, []string{
					m.Format("2006-01"),
					a.currency.Format(s.Income),
					a.currency.Format(s.Expenses),
					a.currency.Format(s.Balance),
				})
			}
			say(cmd, "%s", cli.RenderTable([]string{"Month", "Income", "Expenses", "Balance"}, rows))
			return nil
		},
	}
}
