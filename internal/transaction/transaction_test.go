package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

func TestDraft_WithCustomLabel(t *testing.T) {
	type testCase struct {
		name  string
		draft transaction.Draft
		label string
		want  transaction.Draft
	}

	base := transaction.Draft{Kind: "expense", Category: "Other", Description: " Birthday present ", Amount: "25", Date: "2025/10/01"}

	tests := []testCase{
		{
			name:  "AppendsLabel",
			draft: base,
			label: " Gifts ",
			want:  transaction.Draft{Kind: "expense", Category: "Other", Description: "Birthday present [Gifts]", Amount: "25", Date: "2025/10/01"},
		},
		{
			name:  "ForcesOther",
			draft: transaction.Draft{Kind: "income", Category: "", Description: "Found", Amount: "5", Date: "2025/10/01"},
			label: "Luck",
			want:  transaction.Draft{Kind: "income", Category: "Other", Description: "Found [Luck]", Amount: "5", Date: "2025/10/01"},
		},
		{
			name:  "BlankLabel",
			draft: base,
			label: "  ",
			want:  base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.draft.WithCustomLabel(tt.label))
		})
	}
}
