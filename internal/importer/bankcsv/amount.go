package bankcsv

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

// numberFormat is how a statement writes its amounts.
type numberFormat int

const (
	// numberPlain is "1,234.56" or "-12.50", with an optional currency symbol.
	numberPlain numberFormat = iota
	// numberEuropean is "1.234,56" or "-588,74".
	numberEuropean
)

func (f numberFormat) parse(s string) (decimal.Decimal, error) {
	if f == numberEuropean {
		return parseEuropeanAmount(s)
	}

	return transaction.ParseAmount(s)
}

// parseEuropeanAmount parses a European-formatted amount.
// Format examples: "1.234,56" -> 1234.56, "-588,74" -> -588.74, "10,00" -> 10.
func parseEuropeanAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimSuffix(clean, "EUR")
	clean = strings.ReplaceAll(clean, "€", "")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	return transaction.ParseAmount(clean)
}
