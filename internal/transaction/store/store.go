// Package store persists the ledger as an append-only CSV file with the header
// transaction,category,description,amount,date.
//
// Rows are never rewritten. Reads materialize and normalize the whole file on
// every call, so callers always see the latest appends. There is no locking:
// one process is expected to own the file.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/gillpay/internal/csvfile"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

// ErrSchemaMismatch is returned when the file header shares no column with
// the ledger schema.
var ErrSchemaMismatch = errors.New("ledger header does not match schema")

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Initialize creates the ledger with only its header when it does not exist.
func (s *Store) Initialize() error {
	if _, err := csvfile.Create(s.path, transaction.Header(), nil); err != nil {
		return fmt.Errorf("initializing ledger: %w", err)
	}

	return nil
}

// LoadAll reads every row. A missing or unreadable file yields no rows; only
// a header that matches none of the ledger columns is an error. Missing cells
// default to empty text and a zero amount, unparseable amounts become zero,
// and dates are rewritten in canonical form when they match an accepted
// input form and left as written otherwise.
//
// Write failures are still reported by Append and AppendMany.
func (s *Store) LoadAll() ([]transaction.Transaction, error) {
	table, err := csvfile.Read(s.path)
	if err != nil {
		return []transaction.Transaction{}, nil
	}

	if len(table.Header) == 0 {
		return []transaction.Transaction{}, nil
	}

	idx := table.Index()
	if !sharesColumn(idx) {
		return nil, fmt.Errorf("%w: got %s", ErrSchemaMismatch, strings.Join(table.Header, ","))
	}

	txs := make([]transaction.Transaction, 0, len(table.Records))
	for _, rec := range table.Records {
		txs = append(txs, fromRecord(idx, rec))
	}

	return txs, nil
}

func sharesColumn(idx csvfile.Index) bool {
	for _, c := range transaction.Columns {
		if _, ok := idx[string(c)]; ok {
			return true
		}
	}

	return false
}

func fromRecord(idx csvfile.Index, rec []string) transaction.Transaction {
	cell := func(c transaction.Column) string {
		v, _ := idx.Cell(rec, string(c))
		return v
	}

	return transaction.Transaction{
		Kind:        transaction.Kind(cell(transaction.ColumnKind)),
		Category:    cell(transaction.ColumnCategory),
		Description: cell(transaction.ColumnDescription),
		Amount:      transaction.AmountOrZero(cell(transaction.ColumnAmount)),
		Date:        transaction.NormalizeDate(cell(transaction.ColumnDate)),
	}
}

func toRecord(tx transaction.Transaction) []string {
	return []string{
		string(tx.Kind.Normalize()),
		tx.Category,
		tx.Description,
		transaction.FormatAmount(tx.Amount),
		transaction.NormalizeDate(tx.Date),
	}
}

// Append writes tx at the end of the ledger in canonical column order. It does
// not validate; see transaction.Validator.
func (s *Store) Append(tx transaction.Transaction) error {
	return s.AppendMany([]transaction.Transaction{tx})
}

// AppendMany writes txs at the end of the ledger, creating it first when
// missing. Empty input is a no-op.
func (s *Store) AppendMany(txs []transaction.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	if err := s.Initialize(); err != nil {
		return err
	}

	rows := make([][]string, len(txs))
	for i, tx := range txs {
		rows[i] = toRecord(tx)
	}

	if err := csvfile.Append(s.path, rows); err != nil {
		return fmt.Errorf("appending transactions: %w", err)
	}

	return nil
}

// FilterByColumn returns the normalized rows whose column equals value
// exactly. Amounts compare numerically and dates after normalization.
func (s *Store) FilterByColumn(column, value string) ([]transaction.Transaction, error) {
	col, ok := transaction.ParseColumn(column)
	if !ok {
		return nil, transaction.UnknownColumnError(column)
	}

	txs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	match := columnMatcher(col, value)

	var out []transaction.Transaction

	for _, tx := range txs {
		if match(tx) {
			out = append(out, tx)
		}
	}

	return out, nil
}

func columnMatcher(col transaction.Column, value string) func(transaction.Transaction) bool {
	switch col {
	case transaction.ColumnKind:
		return func(tx transaction.Transaction) bool { return string(tx.Kind) == value }
	case transaction.ColumnCategory:
		return func(tx transaction.Transaction) bool { return tx.Category == value }
	case transaction.ColumnDescription:
		return func(tx transaction.Transaction) bool { return tx.Description == value }
	case transaction.ColumnAmount:
		want, err := transaction.ParseAmount(value)
		if err != nil {
			return func(transaction.Transaction) bool { return false }
		}

		return func(tx transaction.Transaction) bool { return tx.Amount.Equal(want) }
	}

	want := transaction.NormalizeDate(value)

	return func(tx transaction.Transaction) bool { return tx.Date == want }
}

// FilterByDateRange returns the rows dated within r, bounds included. Rows
// whose date cannot be parsed are left out.
func (s *Store) FilterByDateRange(r transaction.DateRange) ([]transaction.Transaction, error) {
	txs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	var out []transaction.Transaction

	for _, tx := range txs {
		d, ok := tx.Time()
		if !ok || !r.Contains(d) {
			continue
		}

		out = append(out, tx)
	}

	return out, nil
}

// IsDuplicate reports whether the ledger holds a row with the same duplicate
// key as tx. It is advisory; nothing is blocked here.
func (s *Store) IsDuplicate(tx transaction.Transaction) (bool, error) {
	txs, err := s.LoadAll()
	if err != nil {
		return false, err
	}

	key := transaction.KeyOf(tx)
	for _, existing := range txs {
		if transaction.KeyOf(existing) == key {
			return true, nil
		}
	}

	return false, nil
}
