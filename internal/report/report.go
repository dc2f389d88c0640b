// Package report computes read-only views over the ledger. Every call reloads
// the ledger and recomputes from scratch.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

//go:generate mockgen -source=report.go -destination=source_mock.go -package=report
type Source interface {
	LoadAll() ([]transaction.Transaction, error)
	FilterByDateRange(r transaction.DateRange) ([]transaction.Transaction, error)
}

type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

type TypedCategoryTotal struct {
	Kind     transaction.Kind
	Category string
	Total    decimal.Decimal
}

type MonthSummary struct {
	Year    int
	Month   int
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

func (s *Service) load(r transaction.DateRange) ([]transaction.Transaction, error) {
	var (
		txs []transaction.Transaction
		err error
	)

	if r.IsZero() {
		txs, err = s.source.LoadAll()
	} else {
		txs, err = s.source.FilterByDateRange(r)
	}

	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	return txs, nil
}

// ExpenseByCategory totals expenses per category, largest first. Categories
// are grouped by exact name; equal totals keep their first-seen order.
func (s *Service) ExpenseByCategory(r transaction.DateRange) ([]CategoryTotal, error) {
	return s.byCategory(transaction.KindExpense, r)
}

// IncomeByCategory is ExpenseByCategory for income.
func (s *Service) IncomeByCategory(r transaction.DateRange) ([]CategoryTotal, error) {
	return s.byCategory(transaction.KindIncome, r)
}

func (s *Service) byCategory(kind transaction.Kind, r transaction.DateRange) ([]CategoryTotal, error) {
	txs, err := s.load(r)
	if err != nil {
		return nil, err
	}

	return groupExact(txs, kind), nil
}

func groupExact(txs []transaction.Transaction, kind transaction.Kind) []CategoryTotal {
	var totals []CategoryTotal

	pos := make(map[string]int)

	for _, tx := range txs {
		if tx.Kind.Normalize() != kind {
			continue
		}

		i, ok := pos[tx.Category]
		if !ok {
			i = len(totals)
			pos[tx.Category] = i
			totals = append(totals, CategoryTotal{Category: tx.Category})
		}

		totals[i].Total = totals[i].Total.Add(tx.Amount)
	}

	for i := range totals {
		totals[i].Total = transaction.RoundCents(totals[i].Total)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})

	return totals
}

// AllByCategory returns the income totals followed by the expense totals,
// each block ordered as in ExpenseByCategory.
func (s *Service) AllByCategory(r transaction.DateRange) ([]TypedCategoryTotal, error) {
	txs, err := s.load(r)
	if err != nil {
		return nil, err
	}

	var out []TypedCategoryTotal

	for _, kind := range transaction.Kinds {
		for _, ct := range groupExact(txs, kind) {
			out = append(out, TypedCategoryTotal{Kind: kind, Category: ct.Category, Total: ct.Total})
		}
	}

	return out, nil
}

type monthKey struct {
	year  int
	month int
}

// SummaryByMonth returns income, expense and net per calendar month in
// chronological order. Rows with an unparseable date are left out.
func (s *Service) SummaryByMonth() ([]MonthSummary, error) {
	txs, err := s.load(transaction.DateRange{})
	if err != nil {
		return nil, err
	}

	months := make(map[monthKey]*MonthSummary)

	for _, tx := range txs {
		d, ok := tx.Time()
		if !ok {
			continue
		}

		k := monthKey{year: d.Year(), month: int(d.Month())}

		m, ok := months[k]
		if !ok {
			m = &MonthSummary{
				Year:  k.year,
				Month: k.month,
				Label: fmt.Sprintf("%s %d", d.Month(), d.Year()),
			}
			months[k] = m
		}

		switch tx.Kind.Normalize() {
		case transaction.KindIncome:
			m.Income = m.Income.Add(tx.Amount)
		case transaction.KindExpense:
			m.Expense = m.Expense.Add(tx.Amount)
		}
	}

	out := make([]MonthSummary, 0, len(months))

	for _, m := range months {
		m.Net = transaction.RoundCents(m.Income.Sub(m.Expense))
		m.Income = transaction.RoundCents(m.Income)
		m.Expense = transaction.RoundCents(m.Expense)
		out = append(out, *m)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}

		return out[i].Month < out[j].Month
	})

	return out, nil
}

// TotalsByCategoryCaseFolded totals kind per category with names compared
// trimmed and case-insensitively. Buckets are returned in first-seen order and
// named after the first spelling seen, title-cased.
func (s *Service) TotalsByCategoryCaseFolded(kind transaction.Kind) ([]CategoryTotal, error) {
	txs, err := s.load(transaction.DateRange{})
	if err != nil {
		return nil, err
	}

	var (
		fold  = cases.Fold()
		title = cases.Title(language.Und)

		totals []CategoryTotal
		pos    = make(map[string]int)
	)

	kind = kind.Normalize()

	for _, tx := range txs {
		if tx.Kind.Normalize() != kind {
			continue
		}

		name := strings.TrimSpace(tx.Category)
		key := fold.String(name)

		i, ok := pos[key]
		if !ok {
			i = len(totals)
			pos[key] = i
			totals = append(totals, CategoryTotal{Category: title.String(name)})
		}

		totals[i].Total = totals[i].Total.Add(tx.Amount)
	}

	for i := range totals {
		totals[i].Total = transaction.RoundCents(totals[i].Total)
	}

	return totals, nil
}

// Summary totals the whole ledger.
func (s *Service) Summary() (Summary, error) {
	txs, err := s.load(transaction.DateRange{})
	if err != nil {
		return Summary{}, err
	}

	var sum Summary

	for _, tx := range txs {
		switch tx.Kind.Normalize() {
		case transaction.KindIncome:
			sum.Income = sum.Income.Add(tx.Amount)
		case transaction.KindExpense:
			sum.Expense = sum.Expense.Add(tx.Amount)
		}
	}

	sum.Net = transaction.RoundCents(sum.Income.Sub(sum.Expense))
	sum.Income = transaction.RoundCents(sum.Income)
	sum.Expense = transaction.RoundCents(sum.Expense)

	return sum, nil
}
