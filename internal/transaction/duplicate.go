package transaction

import (
	"strings"

	"golang.org/x/text/cases"
)

// DuplicateKey is the normalized identity two transactions are compared on.
type DuplicateKey struct {
	Kind        string
	Category    string
	Description string
	Amount      string
	Date        string
}

// KeyOf builds the duplicate key of t: text fields trimmed and case-folded,
// the amount rounded to cents and the date in canonical form.
func KeyOf(t Transaction) DuplicateKey {
	fold := cases.Fold()

	return DuplicateKey{
		Kind:        fold.String(strings.TrimSpace(string(t.Kind))),
		Category:    fold.String(strings.TrimSpace(t.Category)),
		Description: fold.String(strings.TrimSpace(t.Description)),
		Amount:      RoundCents(t.Amount).StringFixed(centPlaces),
		Date:        NormalizeDate(t.Date),
	}
}

// IsDuplicateOf reports whether a and b share a duplicate key.
func IsDuplicateOf(a, b Transaction) bool {
	return KeyOf(a) == KeyOf(b)
}
