package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/gillpay/internal/report"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

const chartWidth = 40

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Bar charts of category totals or monthly net",
	}

	cmd.AddCommand(categoryChartCmd("expenses", transaction.KindExpense))
	cmd.AddCommand(categoryChartCmd("income", transaction.KindIncome))
	cmd.AddCommand(monthlyChartCmd())

	return cmd
}

func categoryChartCmd(use string, kind transaction.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Chart %s per category", kind),
		Long:  `Category names are grouped ignoring case and surrounding spaces.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			totals, err := svc.Reports.TotalsByCategoryCaseFolded(kind)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(totals) == 0 {
				return noData(out)
			}

			drawCategoryChart(out, totals)

			return nil
		},
	}
}

func drawCategoryChart(w io.Writer, totals []report.CategoryTotal) {
	largest := decimal.Zero
	width := 0

	for _, t := range totals {
		largest = decimal.Max(largest, t.Total)
		width = max(width, len([]rune(t.Category)))
	}

	for _, t := range totals {
		fmt.Fprintf(w, "%-*s %s %s\n", width, t.Category, barStyle.Render(bar(t.Total, largest, chartWidth)), svc.Money(t.Total))
	}
}

func monthlyChartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Chart net income per month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			months, err := svc.Reports.SummaryByMonth()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(months) == 0 {
				return noData(out)
			}

			largest := decimal.Zero
			width := 0

			for _, m := range months {
				largest = decimal.Max(largest, m.Net.Abs())
				width = max(width, len(m.Label))
			}

			for _, m := range months {
				style := successStyle
				if m.Net.IsNegative() {
					style = errorStyle
				}

				fmt.Fprintf(out, "%-*s %s %s\n", width, m.Label, style.Render(bar(m.Net, largest, chartWidth)), svc.SignedMoney(m.Net))
			}

			return nil
		},
	}
}
