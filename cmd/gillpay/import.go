package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/gillpay/internal/importer"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

const (
	duplicatesAsk  = "ask"
	duplicatesKeep = "keep"
	duplicatesSkip = "skip"
)

func importCmd() *cobra.Command {
	var duplicates string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank statement or another ledger",
		Long: `Import transactions from an OFX/QFX download or a CSV file. Supported CSV
layouts are a gillpay ledger, CGD account, statement and card exports, and
generic Date/Description/Amount or Date/Description/Debit/Credit files. Bank rows
are filed under "Other".

Rows already in the ledger are held back; --duplicates decides what happens to them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch duplicates {
			case duplicatesAsk, duplicatesKeep, duplicatesSkip:
			default:
				return fmt.Errorf("invalid --duplicates %q: use ask, keep or skip", duplicates)
			}

			res, err := svc.Imports.ImportFile(args[0])
			if err != nil {
				return err
			}

			slog.Debug("imported statement", "file", args[0], "format", res.Format,
				"imported", len(res.Imported), "duplicates", len(res.Duplicates), "rejected", len(res.Rejected))

			out := cmd.OutOrStdout()
			printRejected(out, res.Rejected)

			kept, err := resolveDuplicates(res, duplicates)
			if err != nil {
				return err
			}

			if len(kept) > 0 {
				if err := svc.Transactions.ImportDuplicates(kept); err != nil {
					return err
				}
			}

			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Imported %d transactions from %s (%s).",
				len(res.Imported)+len(kept), args[0], res.Format)))

			if skipped := len(res.Duplicates) - len(kept); skipped > 0 {
				fmt.Fprintln(out, faintStyle.Render(fmt.Sprintf("Skipped %d duplicates.", skipped)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&duplicates, "duplicates", duplicatesAsk, "what to do with rows already in the ledger: ask, keep or skip")

	return cmd
}

func printRejected(w io.Writer, rejected []transaction.Rejection) {
	if len(rejected) == 0 {
		return
	}

	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d rows were not imported:", len(rejected))))

	for _, r := range rejected {
		fmt.Fprintf(w, "  %s %s %q: %v\n", r.Draft.Date, r.Draft.Amount, r.Draft.Description, r.Err)
	}
}

func resolveDuplicates(res *importer.Result, mode string) ([]transaction.Transaction, error) {
	if len(res.Duplicates) == 0 {
		return nil, nil
	}

	switch mode {
	case duplicatesKeep:
		return res.Duplicates, nil
	case duplicatesSkip:
		return nil, nil
	}

	options := make([]huh.Option[int], len(res.Duplicates))
	for i, tx := range res.Duplicates {
		options[i] = huh.NewOption(fmt.Sprintf("%s  %-8s %10s  %s", tx.Date, tx.Kind, svc.Money(tx.Amount), tx.Description), i)
	}

	var picked []int

	err := huh.NewMultiSelect[int]().
		Title(fmt.Sprintf("%d rows are already in the ledger. Import any of them anyway?", len(res.Duplicates))).
		Description("Space to toggle, Enter to confirm.").
		Options(options...).
		Value(&picked).
		Run()
	if err != nil {
		return nil, fmt.Errorf("select duplicates: %w", err)
	}

	kept := make([]transaction.Transaction, 0, len(picked))
	for _, i := range picked {
		kept = append(kept, res.Duplicates[i])
	}

	return kept, nil
}
