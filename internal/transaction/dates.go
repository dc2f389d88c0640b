package transaction

import (
	"strings"
	"time"
)

// DateLayout is the canonical on-disk date form.
const DateLayout = "2006/01/02"

// inputLayouts are the accepted free-form input dates, tried in order.
// Numeric month-first forms win over day-first ones.
var inputLayouts = []string{
	"2006/1/2",
	"2006-1-2",
	"1/2/2006",
	"1-2-2006",
	"2 Jan 2006",
	"2 January 2006",
}

// ParseDate parses s against the accepted input forms.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// NormalizeDate renders s in canonical form. Input that matches no accepted
// form is returned trimmed but otherwise unchanged.
func NormalizeDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return strings.TrimSpace(s)
	}

	return t.Format(DateLayout)
}

// FormatDate renders t in canonical form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsCanonicalDate reports whether s is a real calendar date written exactly as
// YYYY/MM/DD.
func IsCanonicalDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
