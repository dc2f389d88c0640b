package transaction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gillpay/internal/category"
)

// Kind is the side of the ledger a transaction belongs to. It is stored in
// lowercase.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Kinds lists the valid kinds, income first.
var Kinds = []Kind{KindIncome, KindExpense}

// Normalize trims and lowercases k.
func (k Kind) Normalize() Kind {
	return Kind(strings.ToLower(strings.TrimSpace(string(k))))
}

// Valid reports whether the normalized kind is income or expense.
func (k Kind) Valid() bool {
	switch k.Normalize() {
	case KindIncome, KindExpense:
		return true
	}

	return false
}

// CategoryType returns the registry type categories of this kind live under.
func (k Kind) CategoryType() category.Type {
	if k.Normalize() == KindIncome {
		return category.TypeIncome
	}

	return category.TypeExpense
}

// Transaction is a single ledger row. Amount is a positive magnitude for both
// kinds. Date is the canonical YYYY/MM/DD form, or the original text when a
// stored row could not be parsed.
type Transaction struct {
	Kind        Kind
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        string
}

// Time parses the canonical date. It reports false for rows whose date is not
// in canonical form.
func (t Transaction) Time() (time.Time, bool) {
	d, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return time.Time{}, false
	}

	return d, true
}

// Draft is a candidate transaction as entered by a user or read from a file,
// before validation.
type Draft struct {
	Kind        string
	Category    string
	Description string
	Amount      string
	Date        string
}

// WithCustomLabel files d under the reserved Other category and keeps label
// as a bracketed suffix of the description: "Birthday gift [Gifts]". A blank
// label leaves d unchanged.
func (d Draft) WithCustomLabel(label string) Draft {
	label = strings.TrimSpace(label)
	if label == "" {
		return d
	}

	d.Category = category.Other
	d.Description = strings.TrimSpace(d.Description) + " [" + label + "]"

	return d
}

// Column names a ledger column.
type Column string

const (
	ColumnKind        Column = "transaction"
	ColumnCategory    Column = "category"
	ColumnDescription Column = "description"
	ColumnAmount      Column = "amount"
	ColumnDate        Column = "date"
)

// Columns is the canonical on-disk column order.
var Columns = []Column{ColumnKind, ColumnCategory, ColumnDescription, ColumnAmount, ColumnDate}

// Header returns the canonical header row.
func Header() []string {
	h := make([]string, len(Columns))
	for i, c := range Columns {
		h[i] = string(c)
	}

	return h
}

// ParseColumn resolves a column name.
func ParseColumn(s string) (Column, bool) {
	for _, c := range Columns {
		if string(c) == s {
			return c, true
		}
	}

	return "", false
}

// DateRange is an inclusive range of calendar days. A nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Contains reports whether the calendar day of d lies within the range.
func (r DateRange) Contains(d time.Time) bool {
	day := truncateDay(d)

	if r.Start != nil && day.Before(truncateDay(*r.Start)) {
		return false
	}

	if r.End != nil && day.After(truncateDay(*r.End)) {
		return false
	}

	return true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ListFilter narrows a ledger listing. Zero values match everything.
type ListFilter struct {
	Kind     *Kind
	Category string
	Range    DateRange
}
