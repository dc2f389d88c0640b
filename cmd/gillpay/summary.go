package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show total income, expenses and net",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sum, err := svc.Reports.Summary()
			if err != nil {
				return err
			}

			renderTable(cmd.OutOrStdout(), []string{"Income", "Expenses", "Net"}, [][]string{{
				svc.Money(sum.Income),
				svc.Money(sum.Expense),
				svc.SignedMoney(sum.Net),
			}})

			if sum.Net.IsNegative() {
				fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("Spending exceeds income."))
			}

			return nil
		},
	}
}
