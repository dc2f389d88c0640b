package transaction

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// centPlaces is the precision amounts are stored and reported with.
const centPlaces = 2

// ParseAmount parses a plain decimal number. Thousands separators and a
// dollar sign on either side of the sign are tolerated ("-$1,250.00"), and an
// amount wrapped in parentheses is negative ("(4.50)").
func ParseAmount(s string) (decimal.Decimal, error) {
	clean, neg := cutSign(strings.TrimSpace(s))
	clean = strings.TrimSpace(strings.TrimPrefix(clean, "$"))
	clean = strings.ReplaceAll(clean, ",", "")

	if neg && strings.HasPrefix(clean, "-") {
		return decimal.Zero, fmt.Errorf("can't convert %s to decimal", s)
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, err
	}

	if neg {
		d = d.Neg()
	}

	return d, nil
}

// cutSign strips a leading minus or enclosing parentheses from s and reports
// whether either was present.
func cutSign(s string) (string, bool) {
	if len(s) > 1 && s[0] == '(' && s[len(s)-1] == ')' {
		return strings.TrimSpace(s[1 : len(s)-1]), true
	}

	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return strings.TrimSpace(rest), true
	}

	return s, false
}

// AmountOrZero reads a stored amount cell. Empty or unparseable cells count
// as zero.
func AmountOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}

	return d
}

// RoundCents rounds d to two decimal places.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(centPlaces)
}

// FormatAmount renders an amount the way it is stored: a plain decimal with no
// grouping or exponent.
func FormatAmount(d decimal.Decimal) string {
	return d.String()
}
