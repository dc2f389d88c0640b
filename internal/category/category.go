package category

import (
	"errors"
	"fmt"
	"strings"
)

// Type scopes a category to one side of the ledger.
type Type string

const (
	TypeIncome  Type = "Income"
	TypeExpense Type = "Expense"
)

// Types lists the category types in display order.
var Types = []Type{TypeIncome, TypeExpense}

// Other is the reserved catch-all name present for every type.
const Other = "Other"

var (
	ErrEmptyName    = errors.New("category name cannot be empty")
	ErrReservedName = errors.New("the name 'Other' is reserved")
	ErrDuplicate    = errors.New("category already exists")
	ErrNotFound     = errors.New("category not found")
	ErrUnknownType  = errors.New("unknown category type")
)

// Category is a single row of the registry. Active is false once archived.
type Category struct {
	Type   Type
	Name   string
	Active bool
}

// Seed holds the categories written on first initialization.
type Seed struct {
	Income  []string
	Expense []string
}

// DefaultSeed returns the built-in category lists.
func DefaultSeed() Seed {
	return Seed{
		Income: []string{
			"Salary",
			"Bonus",
			"Interest",
			"Dividends",
			"Gifts",
			"Investments",
			Other,
		},
		Expense: []string{
			"Rent",
			"Utilities",
			"Groceries",
			"Food & Dining",
			"Transportation",
			"Insurance",
			"Entertainment",
			"Healthcare",
			"Education",
			"Investments",
			Other,
		},
	}
}

// Rows expands the seed into active registry rows, income first.
func (s Seed) Rows() []Category {
	rows := make([]Category, 0, len(s.Income)+len(s.Expense))

	for _, n := range s.Income {
		rows = append(rows, Category{Type: TypeIncome, Name: n, Active: true})
	}

	for _, n := range s.Expense {
		rows = append(rows, Category{Type: TypeExpense, Name: n, Active: true})
	}

	return rows
}

// ParseType accepts "income" or "expense" in any case and rejects everything else.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return TypeIncome, nil
	case "expense":
		return TypeExpense, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// NormalizeType maps free-form input onto a Type: anything starting with "inc"
// is Income, everything else is Expense. Prefer ParseType for user input.
func NormalizeType(s string) Type {
	if strings.HasPrefix(strings.ToLower(s), "inc") {
		return TypeIncome
	}

	return TypeExpense
}

// IsReserved reports whether name is the reserved "Other" category.
func IsReserved(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), Other)
}
