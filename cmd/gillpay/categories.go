package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/gillpay/internal/category"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage income and expense categories",
		Long: `List, add, rename and archive categories. Names are unique per type ignoring
case. "Other" is reserved and always available.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(renameCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

// typesArg resolves an optional type argument; empty means both types.
func typesArg(s string) ([]category.Type, error) {
	if s == "" {
		return category.Types, nil
	}

	t, err := category.ParseType(s)
	if err != nil {
		return nil, err
	}

	return []category.Type{t}, nil
}

func listCategoriesCmd() *cobra.Command {
	var (
		typ string
		all bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			types, err := typesArg(typ)
			if err != nil {
				return err
			}

			var rows [][]string

			for _, t := range types {
				names, err := svc.Categories.ListNames(t, all)
				if err != nil {
					return err
				}

				active := make(map[string]bool)

				if all {
					activeNames, err := svc.Categories.ListNames(t, false)
					if err != nil {
						return err
					}

					for _, n := range activeNames {
						active[strings.ToLower(n)] = true
					}
				}

				for _, n := range names {
					row := []string{string(t), n}
					if all {
						state := "archived"
						if active[strings.ToLower(n)] {
							state = "active"
						}

						row = append(row, state)
					}

					rows = append(rows, row)
				}
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, faintStyle.Render("No categories found. Use 'gillpay categories add' to create one."))
				return nil
			}

			headers := []string{"Type", "Name"}
			if all {
				headers = append(headers, "State")
			}

			renderTable(out, headers, rows)

			return nil
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "", "only income or expense")
	cmd.Flags().BoolVar(&all, "all", false, "include archived categories")

	return cmd
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <type> <name>",
		Short:   "Add a category, or restore an archived one",
		Example: `  gillpay categories add expense "Pet care"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := category.ParseType(args[0])
			if err != nil {
				return err
			}

			if err := svc.Categories.Add(t, args[1]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Added %s category %q.", t, strings.TrimSpace(args[1]))))

			return nil
		},
	}
}

func renameCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <type> <old> <new>",
		Short: "Rename a category",
		Long:  `Rename a category. Existing ledger rows keep the old name.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := category.ParseType(args[0])
			if err != nil {
				return err
			}

			if err := svc.Categories.Rename(t, args[1], args[2]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Renamed %q to %q.", args[1], args[2])))

			return nil
		},
	}
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <type> <name>",
		Aliases: []string{"archive"},
		Short:   "Archive a category",
		Long:    `Archive a category so it can no longer be used. Adding it again restores it.`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := category.ParseType(args[0])
			if err != nil {
				return err
			}

			if err := svc.Categories.Delete(t, args[1]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Archived %s category %q.", t, args[1])))

			return nil
		},
	}
}
