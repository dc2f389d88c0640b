package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/gillpay/internal/report"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Category and monthly reports",
		Long:  `Totals per category, largest first, or income and expenses per calendar month.`,
	}

	cmd.AddCommand(categoryReportCmd("expenses", "Expense totals per category", func(r transaction.DateRange) ([]report.CategoryTotal, error) {
		return svc.Reports.ExpenseByCategory(r)
	}))
	cmd.AddCommand(categoryReportCmd("income", "Income totals per category", func(r transaction.DateRange) ([]report.CategoryTotal, error) {
		return svc.Reports.IncomeByCategory(r)
	}))
	cmd.AddCommand(allReportCmd())
	cmd.AddCommand(monthlyReportCmd())

	return cmd
}

func addRangeFlags(cmd *cobra.Command, from, to *string) {
	cmd.Flags().StringVar(from, "from", "", "first day to include")
	cmd.Flags().StringVar(to, "to", "", "last day to include")
}

func categoryReportCmd(use, short string, load func(transaction.DateRange) ([]report.CategoryTotal, error)) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := parseRange(from, to)
			if err != nil {
				return err
			}

			totals, err := load(r)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(totals) == 0 {
				return noData(out)
			}

			rows := make([][]string, 0, len(totals))
			for _, t := range totals {
				rows = append(rows, []string{t.Category, svc.Money(t.Total)})
			}

			renderTable(out, []string{"Category", "Total"}, rows)

			return nil
		},
	}

	addRangeFlags(cmd, &from, &to)

	return cmd
}

func allReportCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Income then expense totals per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := parseRange(from, to)
			if err != nil {
				return err
			}

			totals, err := svc.Reports.AllByCategory(r)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(totals) == 0 {
				return noData(out)
			}

			rows := make([][]string, 0, len(totals))
			for _, t := range totals {
				rows = append(rows, []string{string(t.Kind), t.Category, svc.Money(t.Total)})
			}

			renderTable(out, []string{"Type", "Category", "Total"}, rows)

			return nil
		},
	}

	addRangeFlags(cmd, &from, &to)

	return cmd
}

func monthlyReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Income, expenses and net per month",
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

			rows := make([][]string, 0, len(months))
			for _, m := range months {
				rows = append(rows, []string{m.Label, svc.Money(m.Income), svc.Money(m.Expense), svc.SignedMoney(m.Net)})
			}

			renderTable(out, []string{"Month", "Income", "Expenses", "Net"}, rows)

			return nil
		},
	}
}

func noData(w io.Writer) error {
	_, err := fmt.Fprintln(w, faintStyle.Render("No data available for the selected period."))
	return err
}
