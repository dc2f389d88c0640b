// Package bankcsv reads bank statement and ledger CSV exports into transaction
// drafts. The format is auto-detected by matching column headers against
// known profiles; the delimiter may be a comma or a semicolon.
package bankcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gillpay/internal/category"
	enc "github.com/MrJamesThe3rd/gillpay/internal/encoding"
	"github.com/MrJamesThe3rd/gillpay/internal/importer"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

// delimiters are tried in order until one yields a known header.
var delimiters = []rune{';', ','}

// Parser reads statement exports and produces transaction drafts.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*importer.Statement, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	for _, comma := range delimiters {
		rows, err := readRows(string(raw), comma)
		if err != nil {
			continue
		}

		profile, colMap, headerIdx := detectProfile(rows)
		if profile == nil {
			continue
		}

		drafts, err := parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
		if err != nil {
			return nil, err
		}

		return &importer.Statement{Format: profile.Name, Drafts: drafts}, nil
	}

	return nil, fmt.Errorf("no matching statement format found: expected columns for %s", strings.Join(ProfileNames(), ", "))
}

func readRows(s string, comma rune) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(s))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

// colIndex maps lowercased column names to their index in the row.
type colIndex map[string]int

func (c colIndex) get(name string) int {
	if i, ok := c[strings.ToLower(name)]; ok {
		return i
	}

	return -1
}

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if _, dup := cols[name]; name != "" && !dup {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if cols.get(name) < 0 {
			return false
		}
	}

	return true
}

// parseRows extracts drafts from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]transaction.Draft, error) {
	if p.AmountMode == amountLedger {
		return parseLedgerRows(p, cols, rows), nil
	}

	dateIdx := cols.get(p.DateCol)
	descIdx := cols.get(p.DescCol)

	var drafts []transaction.Draft

	for i, row := range rows {
		rowNum := headerRowNum + i + 1 // 1-based, skipping header

		date, ok := parseDate(p, row, dateIdx)
		if !ok {
			continue
		}

		amount, kind, ok, err := parseAmount(p, cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		if !ok {
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		drafts = append(drafts, transaction.Draft{
			Kind:        string(kind),
			Category:    category.Other,
			Description: desc,
			Amount:      transaction.FormatAmount(amount),
			Date:        transaction.FormatDate(date),
		})
	}

	return drafts, nil
}

// parseLedgerRows passes ledger rows through untouched; validation happens on
// import. Blank rows are dropped.
func parseLedgerRows(p *Profile, cols colIndex, rows [][]string) []transaction.Draft {
	var drafts []transaction.Draft

	for _, row := range rows {
		d := transaction.Draft{
			Kind:        cellValue(row, cols.get(p.KindCol)),
			Category:    cellValue(row, cols.get(p.CatCol)),
			Description: cellValue(row, cols.get(p.DescCol)),
			Amount:      cellValue(row, cols.get(p.AmountCol)),
			Date:        cellValue(row, cols.get(p.DateCol)),
		}

		if d == (transaction.Draft{}) {
			continue
		}

		drafts = append(drafts, d)
	}

	return drafts
}

// parseDate tries to parse a date from the given cell index.
// Returns false for empty cells or unparseable values (footer rows, etc).
func parseDate(p *Profile, row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	if p.DateLayout == "" {
		return transaction.ParseDate(s)
	}

	t, err := time.Parse(p.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// parseAmount extracts the magnitude and kind from a row based on the profile's
// amount mode. ok is false when the row carries no non-zero amount. A dated row
// whose amount cell does not parse is an error.
func parseAmount(p *Profile, cols colIndex, row []string) (decimal.Decimal, transaction.Kind, bool, error) {
	switch p.AmountMode {
	case amountSingle:
		return parseSingleAmount(p.Numbers, row, cols.get(p.AmountCol))
	case amountSplit:
		return parseSplitAmount(p.Numbers, row, cols.get(p.DebitCol), cols.get(p.CreditCol))
	}

	return decimal.Zero, "", false, nil
}

// parseSingleAmount handles a single signed amount column.
func parseSingleAmount(f numberFormat, row []string, idx int) (decimal.Decimal, transaction.Kind, bool, error) {
	s := cellValue(row, idx)
	if s == "" {
		return decimal.Zero, "", false, nil
	}

	amount, err := f.parse(s)
	if err != nil {
		return decimal.Zero, "", false, fmt.Errorf("invalid amount %q", s)
	}

	if amount.IsZero() {
		return decimal.Zero, "", false, nil
	}

	if amount.IsNegative() {
		return amount.Neg(), transaction.KindExpense, true, nil
	}

	return amount, transaction.KindIncome, true, nil
}

// parseSplitAmount handles separate debit/credit columns.
func parseSplitAmount(f numberFormat, row []string, debitIdx, creditIdx int) (decimal.Decimal, transaction.Kind, bool, error) {
	cells := []struct {
		idx  int
		name string
		kind transaction.Kind
	}{
		{debitIdx, "debit", transaction.KindExpense},
		{creditIdx, "credit", transaction.KindIncome},
	}

	for _, c := range cells {
		s := cellValue(row, c.idx)
		if s == "" {
			continue
		}

		amount, err := f.parse(s)
		if err != nil {
			return decimal.Zero, "", false, fmt.Errorf("invalid %s %q", c.name, s)
		}

		if !amount.IsZero() {
			return amount.Abs(), c.kind, true, nil
		}
	}

	return decimal.Zero, "", false, nil
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
