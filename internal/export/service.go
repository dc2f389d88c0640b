// Package export copies ledger rows out of the data directory: as a ledger
// file that another GillPay ledger can import, and as a plain-text digest.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MrJamesThe3rd/gillpay/internal/csvfile"
	"github.com/MrJamesThe3rd/gillpay/internal/money"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
	txStore "github.com/MrJamesThe3rd/gillpay/internal/transaction/store"
)

var (
	ErrExists   = errors.New("export file already exists")
	ErrDataFile = errors.New("export target is a data file")
)

//go:generate mockgen -source=service.go -destination=lister_mock.go -package=export
type Lister interface {
	List(filter transaction.ListFilter) ([]transaction.Transaction, error)
}

// Service handles the export of ledger rows.
type Service struct {
	transactions Lister
	dataFiles    []string
}

// NewService creates a new export Service. Exports never write to any of
// dataFiles.
func NewService(transactions Lister, dataFiles ...string) *Service {
	return &Service{transactions: transactions, dataFiles: dataFiles}
}

// Export writes the rows matching filter to a new ledger file at path and
// returns them. An existing file is only replaced when overwrite is set.
func (s *Service) Export(filter transaction.ListFilter, path string, overwrite bool) ([]transaction.Transaction, error) {
	for _, f := range s.dataFiles {
		if sameFile(path, f) {
			return nil, fmt.Errorf("%w: %s", ErrDataFile, path)
		}
	}

	txs, err := s.transactions.List(filter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	exists, err := csvfile.Exists(path)
	if err != nil {
		return nil, err
	}

	if exists {
		if !overwrite {
			return nil, fmt.Errorf("%w: %s", ErrExists, path)
		}

		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("replacing %s: %w", path, err)
		}
	}

	out := txStore.New(path)
	if err := out.Initialize(); err != nil {
		return nil, err
	}

	if err := out.AppendMany(txs); err != nil {
		return nil, fmt.Errorf("writing export: %w", err)
	}

	return txs, nil
}

// sameFile reports whether a and b name the same file, following links when
// both exist.
func sameFile(a, b string) bool {
	ai, errA := os.Stat(a)
	bi, errB := os.Stat(b)

	if errA == nil && errB == nil {
		return os.SameFile(ai, bi)
	}

	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)

	return errA == nil && errB == nil && absA == absB
}

// Digest renders one line per transaction, expenses with a minus sign:
//
//	* 2025/10/01 | Lunch | -$12.50 | Food & Dining
func Digest(txs []transaction.Transaction, currency string) string {
	var sb strings.Builder

	for _, tx := range txs {
		amount := tx.Amount
		if tx.Kind.Normalize() == transaction.KindExpense {
			amount = amount.Neg()
		}

		fmt.Fprintf(&sb, "* %s | %s | %s | %s\n", tx.Date, tx.Description, money.FormatSigned(amount, currency), tx.Category)
	}

	return sb.String()
}
