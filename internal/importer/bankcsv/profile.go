package bankcsv

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column (e.g. "Montante" with value "-10,00").
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns (e.g. "Débito"/"Crédito").
	amountSplit
	// amountLedger means a positive amount with an explicit transaction kind
	// column, as written by the ledger itself.
	amountLedger
)

// Profile describes the column layout of a statement export. Column names
// are matched trimmed and case-insensitively.
type Profile struct {
	Name       string
	DateCol    string
	DescCol    string
	AmountMode amountMode
	AmountCol  string // used when AmountMode is amountSingle or amountLedger
	DebitCol   string // used when AmountMode == amountSplit
	CreditCol  string // used when AmountMode == amountSplit
	KindCol    string // used when AmountMode == amountLedger
	CatCol     string // used when AmountMode == amountLedger
	Numbers    numberFormat
	// DateLayout is the only accepted date form when set. Otherwise the
	// ledger's accepted input forms apply.
	DateLayout string
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	case amountLedger:
		cols = append(cols, p.AmountCol, p.KindCol, p.CatCol)
	}

	return cols
}

// profiles is the ordered list of export formats to try during auto-detection.
// More specific profiles should come first to avoid false matches.
var profiles = []Profile{
	{
		Name:       "gillpay",
		DateCol:    "date",
		DescCol:    "description",
		AmountMode: amountLedger,
		AmountCol:  "amount",
		KindCol:    "transaction",
		CatCol:     "category",
	},
	{
		Name:       "cgd cartão",
		DateCol:    "Data",
		DescCol:    "Descrição",
		AmountMode: amountSplit,
		DebitCol:   "Débito",
		CreditCol:  "Crédito",
		Numbers:    numberEuropean,
		DateLayout: "02-01-2006",
	},
	{
		Name:       "cgd extrato",
		DateCol:    "Data mov.",
		DescCol:    "Descrição",
		AmountMode: amountSingle,
		AmountCol:  "Movimento",
		Numbers:    numberEuropean,
		DateLayout: "02-01-2006",
	},
	{
		Name:       "cgd conta",
		DateCol:    "Data mov.",
		DescCol:    "Descrição",
		AmountMode: amountSingle,
		AmountCol:  "Montante",
		Numbers:    numberEuropean,
		DateLayout: "02-01-2006",
	},
	{
		Name:       "split",
		DateCol:    "Date",
		DescCol:    "Description",
		AmountMode: amountSplit,
		DebitCol:   "Debit",
		CreditCol:  "Credit",
	},
	{
		Name:       "signed",
		DateCol:    "Date",
		DescCol:    "Description",
		AmountMode: amountSingle,
		AmountCol:  "Amount",
	},
}

// ProfileNames lists the recognized formats in detection order.
func ProfileNames() []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}

	return names
}
