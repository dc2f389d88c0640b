package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/gillpay/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		kind      string
		cat       string
		from      string
		to        string
		out       string
		overwrite bool
		digest    bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write matching transactions to a new ledger file",
		Long: `Export copies the ledger rows matching the filters into a new CSV file with the
ledger's own header, so another GillPay ledger can import it. With --digest a one
line per transaction summary is printed as well.`,
		Example: `  gillpay export --from 2025/10/01 --to 2025/10/31 --out october.csv --digest`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := buildFilter(kind, cat, from, to)
			if err != nil {
				return err
			}

			txs, err := svc.Exports.Export(filter, out, overwrite)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("Exported %d transactions to %s.", len(txs), out)))

			if digest && len(txs) > 0 {
				fmt.Fprint(w, "\n"+export.Digest(txs, svc.Config.App.Currency))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "only income or expense")
	cmd.Flags().StringVarP(&cat, "category", "c", "", "only this category (exact match)")
	cmd.Flags().StringVar(&from, "from", "", "first day to include")
	cmd.Flags().StringVar(&to, "to", "", "last day to include")
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace --out if it exists")
	cmd.Flags().BoolVar(&digest, "digest", false, "also print a one line per transaction digest")

	_ = cmd.MarkFlagRequired("out")

	return cmd
}
