package transaction

import (
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/gillpay/internal/category"
)

//go:generate mockgen -source=validate.go -destination=categories_mock.go -package=transaction
type Categories interface {
	ListNames(t category.Type, includeInactive bool) ([]string, error)
}

// Validator runs the checks a draft must pass before it is written.
type Validator struct {
	categories Categories
}

func NewValidator(categories Categories) *Validator {
	return &Validator{categories: categories}
}

// NormalizeDraft cleans free-form input: fields are trimmed, the kind is
// lowercased and the date is rewritten in canonical form when it matches an
// accepted input form.
func NormalizeDraft(d Draft) Draft {
	return Draft{
		Kind:        string(Kind(d.Kind).Normalize()),
		Category:    strings.TrimSpace(d.Category),
		Description: strings.TrimSpace(d.Description),
		Amount:      strings.TrimSpace(d.Amount),
		Date:        NormalizeDate(d.Date),
	}
}

// Validate checks d in order (kind, date, category, amount, description) and
// stops at the first failure, returned as a *ValidationError. The date must
// already be canonical; run NormalizeDraft first for free-form input.
//
// On success the returned Transaction carries the lowercase kind, the
// category in the registry's casing and the amount rounded to cents.
func (v *Validator) Validate(d Draft) (Transaction, error) {
	kind := Kind(d.Kind).Normalize()
	if !kind.Valid() {
		return Transaction{}, &ValidationError{
			Rule:    RuleKind,
			Message: "Invalid transaction type. Use 'income' or 'expense'.",
		}
	}

	if !IsCanonicalDate(d.Date) {
		return Transaction{}, &ValidationError{
			Rule:    RuleDate,
			Message: "You entered an invalid date. Please enter the date in the format YYYY/MM/DD.",
		}
	}

	cat, err := v.resolveCategory(kind, d.Category)
	if err != nil {
		return Transaction{}, err
	}

	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return Transaction{}, &ValidationError{
			Rule:    RuleAmount,
			Message: "Amount must be a number.",
		}
	}

	amount = RoundCents(amount)
	if !amount.IsPositive() {
		return Transaction{}, &ValidationError{
			Rule:    RuleAmount,
			Message: "Amount must be greater than zero.",
		}
	}

	desc := strings.TrimSpace(d.Description)
	if desc == "" {
		return Transaction{}, &ValidationError{
			Rule:    RuleDescription,
			Message: "Description cannot be empty.",
		}
	}

	return Transaction{
		Kind:        kind,
		Category:    cat,
		Description: desc,
		Amount:      amount,
		Date:        d.Date,
	}, nil
}

func (v *Validator) resolveCategory(kind Kind, name string) (string, error) {
	allowed, err := v.categories.ListNames(kind.CategoryType(), false)
	if err != nil {
		return "", fmt.Errorf("listing categories: %w", err)
	}

	n := strings.TrimSpace(name)
	if category.IsReserved(n) {
		return category.Other, nil
	}

	for _, a := range allowed {
		if n != "" && strings.EqualFold(a, n) {
			return a, nil
		}
	}

	return "", &ValidationError{
		Rule:    RuleCategory,
		Message: fmt.Sprintf("Invalid category '%s' for transaction '%s'.", name, kind),
		Allowed: allowed,
	}
}
