package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gillpay/internal/category"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// parseRange reads the --from and --to flag values. Empty values leave the
// bound open.
func parseRange(from, to string) (transaction.DateRange, error) {
	var r transaction.DateRange

	if from != "" {
		t, ok := transaction.ParseDate(from)
		if !ok {
			return r, fmt.Errorf("invalid --from date %q: use YYYY/MM/DD", from)
		}

		r.Start = &t
	}

	if to != "" {
		t, ok := transaction.ParseDate(to)
		if !ok {
			return r, fmt.Errorf("invalid --to date %q: use YYYY/MM/DD", to)
		}

		r.End = &t
	}

	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return r, fmt.Errorf("--to %s is before --from %s", to, from)
	}

	return r, nil
}

// parseKind reads a --type value as a ledger kind.
func parseKind(s string) (transaction.Kind, error) {
	t, err := category.ParseType(s)
	if err != nil {
		return "", err
	}

	if t == category.TypeIncome {
		return transaction.KindIncome, nil
	}

	return transaction.KindExpense, nil
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(faintStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}

			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
}

// bar draws value as a proportion of largest, at most width cells wide.
// Non-zero values always get at least one cell.
func bar(value, largest decimal.Decimal, width int) string {
	if largest.IsZero() || value.IsZero() {
		return ""
	}

	n := int(value.Abs().Div(largest.Abs()).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	n = max(1, min(n, width))

	return strings.Repeat("█", n)
}

func today() string {
	return transaction.FormatDate(time.Now())
}
