package transaction

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalid is matched by every ValidationError.
	ErrInvalid       = errors.New("invalid transaction")
	ErrUnknownColumn = errors.New("unknown column")
	ErrDuplicate     = errors.New("duplicate transaction")
)

// Rule identifies the validation check that rejected a draft.
type Rule string

const (
	RuleKind        Rule = "kind"
	RuleDate        Rule = "date"
	RuleCategory    Rule = "category"
	RuleAmount      Rule = "amount"
	RuleDescription Rule = "description"
)

// ValidationError describes the first rule a draft failed.
type ValidationError struct {
	Rule    Rule
	Message string
	// Allowed is set for category failures.
	Allowed []string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) == 0 {
		return e.Message
	}

	return fmt.Sprintf("%s\nAllowed: %s.", e.Message, strings.Join(e.Allowed, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// UnknownColumnError names the offending column and the valid ones.
func UnknownColumnError(column string) error {
	return fmt.Errorf("%w %q: expected one of %s", ErrUnknownColumn, column, strings.Join(Header(), ", "))
}
