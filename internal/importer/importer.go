package importer

import (
	"io"

	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

// Statement is a parsed export: the detected format and one draft per
// movement, in file order.
type Statement struct {
	Format string
	Drafts []transaction.Draft
}

//go:generate mockgen -source=importer.go -destination=importer_mock.go -package=importer
type Importer interface {
	Parse(r io.Reader) (*Statement, error)
}

type Ledger interface {
	Import(drafts []transaction.Draft) (*transaction.ImportResult, error)
}
