package transaction_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gillpay/internal/category"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

func expenseNames(m *transaction.MockCategories) {
	m.EXPECT().
		ListNames(category.TypeExpense, false).
		Return([]string{"Food & Dining", "Other", "Rent"}, nil).
		AnyTimes()
}

func validDraft() transaction.Draft {
	return transaction.Draft{
		Kind:        "expense",
		Category:    "Rent",
		Description: "October rent",
		Amount:      "950.00",
		Date:        "2025/10/01",
	}
}

func TestValidator_Validate(t *testing.T) {
	type testCase struct {
		name     string
		mutate   func(d *transaction.Draft)
		wantRule transaction.Rule
		wantMsg  string
	}

	tests := []testCase{
		{
			name: "Valid",
		},
		{
			name:     "BadKind",
			mutate:   func(d *transaction.Draft) { d.Kind = "transfer" },
			wantRule: transaction.RuleKind,
			wantMsg:  "Invalid transaction type. Use 'income' or 'expense'.",
		},
		{
			name:     "KindCheckedBeforeDate",
			mutate:   func(d *transaction.Draft) { d.Kind = ""; d.Date = "" },
			wantRule: transaction.RuleKind,
		},
		{
			name:     "NonCanonicalDate",
			mutate:   func(d *transaction.Draft) { d.Date = "2025-10-01" },
			wantRule: transaction.RuleDate,
			wantMsg:  "You entered an invalid date. Please enter the date in the format YYYY/MM/DD.",
		},
		{
			name:     "ImpossibleDate",
			mutate:   func(d *transaction.Draft) { d.Date = "2025/02/30" },
			wantRule: transaction.RuleDate,
		},
		{
			name:     "UnknownCategory",
			mutate:   func(d *transaction.Draft) { d.Category = "Salary" },
			wantRule: transaction.RuleCategory,
			wantMsg:  "Invalid category 'Salary' for transaction 'expense'.\nAllowed: Food & Dining, Other, Rent.",
		},
		{
			name:     "NotANumber",
			mutate:   func(d *transaction.Draft) { d.Amount = "lots" },
			wantRule: transaction.RuleAmount,
			wantMsg:  "Amount must be a number.",
		},
		{
			name:     "Zero",
			mutate:   func(d *transaction.Draft) { d.Amount = "0.00" },
			wantRule: transaction.RuleAmount,
			wantMsg:  "Amount must be greater than zero.",
		},
		{
			name:     "Negative",
			mutate:   func(d *transaction.Draft) { d.Amount = "-5.00" },
			wantRule: transaction.RuleAmount,
		},
		{
			name:     "RoundsToZero",
			mutate:   func(d *transaction.Draft) { d.Amount = "0.004" },
			wantRule: transaction.RuleAmount,
		},
		{
			name:   "SmallestAmount",
			mutate: func(d *transaction.Draft) { d.Amount = "0.01" },
		},
		{
			name:     "BlankDescription",
			mutate:   func(d *transaction.Draft) { d.Description = "   " },
			wantRule: transaction.RuleDescription,
			wantMsg:  "Description cannot be empty.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cats := transaction.NewMockCategories(ctrl)
			expenseNames(cats)

			d := validDraft()
			if tt.mutate != nil {
				tt.mutate(&d)
			}

			_, err := transaction.NewValidator(cats).Validate(d)
			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, transaction.ErrInvalid)

			var verr *transaction.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantRule, verr.Rule)

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestValidator_ValidateNormalizesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cats := transaction.NewMockCategories(ctrl)
	expenseNames(cats)

	got, err := transaction.NewValidator(cats).Validate(transaction.Draft{
		Kind:        "EXPENSE",
		Category:    "food & dining",
		Description: " Lunch ",
		Amount:      "$1,012.499",
		Date:        "2025/10/05",
	})
	require.NoError(t, err)

	assert.Equal(t, transaction.KindExpense, got.Kind)
	assert.Equal(t, "Food & Dining", got.Category)
	assert.Equal(t, "Lunch", got.Description)
	assert.Equal(t, "1012.5", got.Amount.String())
	assert.Equal(t, "2025/10/05", got.Date)
}

func TestValidator_CategoryLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cats := transaction.NewMockCategories(ctrl)
	cats.EXPECT().ListNames(category.TypeIncome, false).Return(nil, errors.New("disk error"))

	d := validDraft()
	d.Kind = "income"

	_, err := transaction.NewValidator(cats).Validate(d)
	require.Error(t, err)
	assert.NotErrorIs(t, err, transaction.ErrInvalid)
}

func TestNormalizeDraft(t *testing.T) {
	got := transaction.NormalizeDraft(transaction.Draft{
		Kind:        " Income ",
		Category:    " Salary ",
		Description: " Oct ",
		Amount:      " 1000 ",
		Date:        "10/01/2025",
	})

	assert.Equal(t, transaction.Draft{
		Kind:        "income",
		Category:    "Salary",
		Description: "Oct",
		Amount:      "1000",
		Date:        "2025/10/01",
	}, got)
}
