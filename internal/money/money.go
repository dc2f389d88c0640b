// Package money renders ledger amounts for display.
package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency code is configured.
const DefaultCurrency = gomoney.USD

func currency(code string) *gomoney.Currency {
	if code == "" {
		code = DefaultCurrency
	}

	// money.New never returns a nil currency, unlike GetCurrency.
	return gomoney.New(0, code).Currency()
}

// Format renders amount with the currency's symbol, grouping and fraction
// digits, e.g. "$1,000.00". The value is rounded half away from zero to the
// currency's minor unit.
func Format(amount decimal.Decimal, code string) string {
	cur := currency(code)
	minor := amount.Shift(int32(cur.Fraction)).Round(0)

	return cur.Formatter().Format(minor.IntPart())
}

// FormatSigned is Format with an explicit "+" on positive values, for nets.
func FormatSigned(amount decimal.Decimal, code string) string {
	s := Format(amount, code)
	if amount.Round(2).IsPositive() {
		return "+" + s
	}

	return s
}
