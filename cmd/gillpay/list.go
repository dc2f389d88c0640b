package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

func listCmd() *cobra.Command {
	var (
		kind   string
		cat    string
		from   string
		to     string
		column string
		value  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List ledger rows in file order. Filter by type, exact category and date range,
or match one column exactly with --column and --value.`,
		Example: `  gillpay list --type expense --from 2025/10/01 --to 2025/10/31
  gillpay list --column description --value "October rent"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				txs []transaction.Transaction
				err error
			)

			if column != "" {
				txs, err = svc.Transactions.ListBy(column, value)
			} else {
				var filter transaction.ListFilter

				filter, err = buildFilter(kind, cat, from, to)
				if err != nil {
					return err
				}

				txs, err = svc.Transactions.List(filter)
			}

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(txs) == 0 {
				fmt.Fprintln(out, faintStyle.Render("No transactions found."))
				return nil
			}

			rows := make([][]string, 0, len(txs))
			for _, tx := range txs {
				rows = append(rows, []string{tx.Date, string(tx.Kind), tx.Category, tx.Description, svc.Money(tx.Amount)})
			}

			renderTable(out, []string{"Date", "Type", "Category", "Description", "Amount"}, rows)
			fmt.Fprintln(out, faintStyle.Render(fmt.Sprintf("%d transactions", len(txs))))

			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "only income or expense")
	cmd.Flags().StringVarP(&cat, "category", "c", "", "only this category (exact match)")
	cmd.Flags().StringVar(&from, "from", "", "first day to include")
	cmd.Flags().StringVar(&to, "to", "", "last day to include")
	cmd.Flags().StringVar(&column, "column", "", "match one column exactly: transaction, category, description, amount or date")
	cmd.Flags().StringVar(&value, "value", "", "value for --column")

	cmd.MarkFlagsMutuallyExclusive("column", "type")
	cmd.MarkFlagsMutuallyExclusive("column", "category")
	cmd.MarkFlagsMutuallyExclusive("column", "from")
	cmd.MarkFlagsMutuallyExclusive("column", "to")

	return cmd
}

func buildFilter(kind, cat, from, to string) (transaction.ListFilter, error) {
	var filter transaction.ListFilter

	if kind != "" {
		k, err := parseKind(kind)
		if err != nil {
			return filter, err
		}

		filter.Kind = &k
	}

	r, err := parseRange(from, to)
	if err != nil {
		return filter, err
	}

	filter.Category = cat
	filter.Range = r

	return filter, nil
}
