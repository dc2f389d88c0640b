// Package ofx reads OFX/QFX bank and credit card downloads into transaction
// drafts.
package ofx

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gillpay/internal/category"
	"github.com/MrJamesThe3rd/gillpay/internal/importer"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

// FormatName is reported as the statement format.
const FormatName = "ofx"

var (
	severityRe = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRe  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Match reports whether head looks like the start of an OFX document, SGML
// (OFX 1.x) or XML (OFX 2.x).
func Match(head []byte) bool {
	upper := bytes.ToUpper(head)
	return bytes.Contains(upper, []byte("OFXHEADER")) || bytes.Contains(upper, []byte("<OFX>"))
}

// Parser implements importer.Importer for OFX files.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// preprocess fixes formatting issues some banks ship: leading blank lines,
// mixed-case SEVERITY values and SGML tags missing their closing bracket.
func preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRe.ReplaceAllStringFunc(content, strings.ToUpper)

	return openTagRe.ReplaceAllString(content, "$1>")
}

func (p *Parser) Parse(r io.Reader) (*importer.Statement, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("parse ofx: %w", err)
	}

	var lists []*ofxgo.TransactionList

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			lists = append(lists, stmt.BankTranList)
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			lists = append(lists, stmt.BankTranList)
		}
	}

	var drafts []transaction.Draft

	for _, list := range lists {
		for _, tx := range list.Transactions {
			d, ok, err := convert(tx)
			if err != nil {
				return nil, err
			}

			if ok {
				drafts = append(drafts, d)
			}
		}
	}

	return &importer.Statement{Format: FormatName, Drafts: drafts}, nil
}

// convert maps one statement line to a draft. Zero amounts are skipped.
func convert(tx ofxgo.Transaction) (transaction.Draft, bool, error) {
	amount := decimal.NewFromBigRat(&tx.TrnAmt.Rat, 4)
	if amount.IsZero() {
		return transaction.Draft{}, false, nil
	}

	kind := transaction.KindIncome
	if amount.IsNegative() {
		kind = transaction.KindExpense
	}

	desc := description(tx)
	if desc == "" {
		return transaction.Draft{}, false, fmt.Errorf("transaction %s: missing description", tx.FiTID)
	}

	return transaction.Draft{
		Kind:        string(kind),
		Category:    category.Other,
		Description: desc,
		Amount:      transaction.FormatAmount(amount.Abs()),
		Date:        transaction.FormatDate(tx.DtPosted.Time),
	}, true, nil
}

// description prefers the payee, then the name, then the memo.
func description(tx ofxgo.Transaction) string {
	if tx.Payee != nil {
		if name := strings.TrimSpace(string(tx.Payee.Name)); name != "" {
			return name
		}
	}

	if name := strings.TrimSpace(string(tx.Name)); name != "" {
		return name
	}

	return strings.TrimSpace(string(tx.Memo))
}
