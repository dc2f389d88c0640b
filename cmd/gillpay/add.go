package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/gillpay/internal/category"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

func addCmd() *cobra.Command {
	var (
		kind   string
		cat    string
		desc   string
		amount string
		date   string
		label  string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record an income or expense. The category must be an active category of the
same type. Dates are written as YYYY/MM/DD; MM/DD/YYYY, YYYY-MM-DD and
"05 Oct 2025" are also accepted.

--label records a write-in category: the transaction is filed under Other and
the label is appended to the description in brackets.`,
		Example: `  gillpay add --type expense --category Groceries --description "Weekly shop" --amount 82.40
  gillpay add --type income --category Salary --description "October pay" --amount 3000 --date 2025/10/01
  gillpay add --type expense --label Gifts --description "Birthday present" --amount 25`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := parseKind(kind)
			if err != nil {
				return err
			}

			if label != "" && cat != "" && !category.IsReserved(cat) {
				return fmt.Errorf("--label files the transaction under %s, not %q", category.Other, cat)
			}

			draft := transaction.Draft{
				Kind:        string(k),
				Category:    cat,
				Description: desc,
				Amount:      amount,
				Date:        date,
			}.WithCustomLabel(label)

			tx, err := svc.Transactions.Post(draft, force)
			if errors.Is(err, transaction.ErrDuplicate) {
				var saveAnyway bool

				confirm := huh.NewConfirm().
					Title("A matching transaction already exists.").
					Description(fmt.Sprintf("%s %s %q %s on %s. Save anyway?",
						tx.Kind, tx.Category, tx.Description, svc.Money(tx.Amount), tx.Date)).
					Affirmative("Save").
					Negative("Skip").
					Value(&saveAnyway)

				if err := confirm.Run(); err != nil {
					return fmt.Errorf("confirm duplicate: %w", err)
				}

				if !saveAnyway {
					fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("Skipped duplicate transaction."))
					return nil
				}

				tx, err = svc.Transactions.Post(draft, true)
			}

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Saved %s: %s %s on %s (%s).",
				tx.Kind, tx.Description, svc.Money(tx.Amount), tx.Date, tx.Category)))

			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "income or expense (required)")
	cmd.Flags().StringVarP(&cat, "category", "c", "", "category name (required)")
	cmd.Flags().StringVarP(&desc, "description", "d", "", "what the transaction was for (required)")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "positive amount (required)")
	cmd.Flags().StringVar(&date, "date", today(), "transaction date")
	cmd.Flags().StringVarP(&label, "label", "l", "", "write-in category, saved under Other")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "save even if a matching transaction exists")

	_ = cmd.MarkFlagRequired("type")
	cmd.MarkFlagsOneRequired("category", "label")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
