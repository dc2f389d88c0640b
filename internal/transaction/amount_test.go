package transaction_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

func TestParseAmount(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Plain", input: "12.50", want: "12.5"},
		{name: "Grouped", input: " $1,250.00 ", want: "1250"},
		{name: "SignBeforeSymbol", input: "-$4.50", want: "-4.5"},
		{name: "SignAfterSymbol", input: "$-4.50", want: "-4.5"},
		{name: "Parentheses", input: "($1,000.25)", want: "-1000.25"},
		{name: "DoubleSign", input: "-$-4", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Text", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transaction.ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}
