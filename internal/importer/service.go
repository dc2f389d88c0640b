package importer

import (
	"fmt"
	"io"
	"os"

	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

// Result is the outcome of importing one statement.
type Result struct {
	Format string
	*transaction.ImportResult
}

type Service struct {
	parser Importer
	ledger Ledger
}

func NewService(parser Importer, ledger Ledger) *Service {
	return &Service{
		parser: parser,
		ledger: ledger,
	}
}

// Import parses r and hands the drafts to the ledger. Duplicates and
// rejected rows come back in the result; nothing is written for them.
func (s *Service) Import(r io.Reader) (*Result, error) {
	stmt, err := s.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing statement: %w", err)
	}

	res, err := s.ledger.Import(stmt.Drafts)
	if err != nil {
		return nil, fmt.Errorf("importing statement: %w", err)
	}

	return &Result{Format: stmt.Format, ImportResult: res}, nil
}

// ImportFile is Import for a file on disk.
func (s *Service) ImportFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	return s.Import(f)
}
