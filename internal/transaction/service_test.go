package transaction_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gillpay/internal/category"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

func newService(t *testing.T) (*transaction.Service, *transaction.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cats := transaction.NewMockCategories(ctrl)
	cats.EXPECT().ListNames(category.TypeExpense, false).Return([]string{"Food", "Rent"}, nil).AnyTimes()
	cats.EXPECT().ListNames(category.TypeIncome, false).Return([]string{"Salary"}, nil).AnyTimes()

	repo := transaction.NewMockRepository(ctrl)

	return transaction.NewService(repo, cats), repo
}

func tx(kind transaction.Kind, cat, desc, amount, date string) transaction.Transaction {
	return transaction.Transaction{
		Kind:        kind,
		Category:    cat,
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Date:        date,
	}
}

func TestService_Post(t *testing.T) {
	draft := transaction.Draft{
		Kind:        "Expense",
		Category:    "food",
		Description: "Lunch",
		Amount:      "12.5",
		Date:        "10/05/2025",
	}

	zeroAmount := draft
	zeroAmount.Amount = "0"

	type testCase struct {
		name           string
		draft          transaction.Draft
		allowDuplicate bool
		setupMock      func(m *transaction.MockRepository)
		wantErr        error
	}

	tests := []testCase{
		{
			name:  "Success",
			draft: draft,
			setupMock: func(m *transaction.MockRepository) {
				want := tx(transaction.KindExpense, "Food", "Lunch", "12.5", "2025/10/05")

				m.EXPECT().IsDuplicate(gomock.Any()).Return(false, nil)
				m.EXPECT().Append(gomock.Any()).DoAndReturn(func(got transaction.Transaction) error {
					assert.True(t, transaction.IsDuplicateOf(want, got))
					assert.Equal(t, "Food", got.Category)

					return nil
				})
			},
		},
		{
			name:    "Invalid",
			draft:   zeroAmount,
			wantErr: transaction.ErrInvalid,
		},
		{
			name:  "DuplicateRefused",
			draft: draft,
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().IsDuplicate(gomock.Any()).Return(true, nil)
			},
			wantErr: transaction.ErrDuplicate,
		},
		{
			name:           "DuplicateAllowed",
			draft:          draft,
			allowDuplicate: true,
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().IsDuplicate(gomock.Any()).Return(true, nil)
				m.EXPECT().Append(gomock.Any()).Return(nil)
			},
		},
		{
			name:  "RepoError",
			draft: draft,
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().IsDuplicate(gomock.Any()).Return(false, nil)
				m.EXPECT().Append(gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: errors.New("saving transaction"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := svc.Post(tt.draft, tt.allowDuplicate)
			if tt.wantErr != nil {
				require.Error(t, err)

				if errors.Is(tt.wantErr, transaction.ErrInvalid) || errors.Is(tt.wantErr, transaction.ErrDuplicate) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "2025/10/05", got.Date)
		})
	}
}

func TestService_List(t *testing.T) {
	rows := []transaction.Transaction{
		tx(transaction.KindIncome, "Salary", "Oct", "1000", "2025/10/01"),
		tx("Expense", "Food", "Lunch", "12.50", "2025/10/05"),
		tx(transaction.KindExpense, "Rent", "Oct", "950", "2025/10/01"),
	}

	expense := transaction.KindExpense
	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		filter    transaction.ListFilter
		setupMock func(m *transaction.MockRepository)
		wantDescs []string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "All",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().LoadAll().Return(rows, nil)
			},
			wantDescs: []string{"Oct", "Lunch", "Oct"},
		},
		{
			name:   "KindAndCategory",
			filter: transaction.ListFilter{Kind: &expense, Category: "Food"},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().LoadAll().Return(rows, nil)
			},
			wantDescs: []string{"Lunch"},
		},
		{
			name:   "RangeUsesRepositoryFilter",
			filter: transaction.ListFilter{Range: transaction.DateRange{Start: &start}},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().FilterByDateRange(transaction.DateRange{Start: &start}).Return(rows[1:], nil)
			},
			wantDescs: []string{"Lunch", "Oct"},
		},
		{
			name: "Error",
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().LoadAll().Return(nil, errors.New("read error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			got, err := svc.List(tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)

			descs := make([]string, len(got))
			for i, g := range got {
				descs[i] = g.Description
			}

			assert.Equal(t, tt.wantDescs, descs)
		})
	}
}

func TestService_Import(t *testing.T) {
	svc, repo := newService(t)

	existing := []transaction.Transaction{
		tx(transaction.KindExpense, "Rent", "October rent", "950", "2025/10/01"),
	}

	drafts := []transaction.Draft{
		{Kind: "expense", Category: "Rent", Description: "october rent", Amount: "950.00", Date: "2025-10-01"},
		{Kind: "expense", Category: "Food", Description: "Lunch", Amount: "12.50", Date: "2025/10/05"},
		{Kind: "expense", Category: "Food", Description: "Lunch", Amount: "12.5", Date: "10/05/2025"},
		{Kind: "income", Category: "Salary", Description: "Oct", Amount: "-1", Date: "2025/10/01"},
		{Kind: "expense", Category: "Travel", Description: "Train", Amount: "20", Date: "2025/10/07"},
	}

	repo.EXPECT().LoadAll().Return(existing, nil)
	repo.EXPECT().AppendMany(gomock.Any()).DoAndReturn(func(got []transaction.Transaction) error {
		require.Len(t, got, 1)
		assert.Equal(t, "Lunch", got[0].Description)

		return nil
	})

	res, err := svc.Import(drafts)
	require.NoError(t, err)

	assert.Len(t, res.Imported, 1)
	require.Len(t, res.Duplicates, 2)
	assert.Equal(t, "october rent", res.Duplicates[0].Description)
	assert.Equal(t, "Lunch", res.Duplicates[1].Description)
	require.Len(t, res.Rejected, 2)
	assert.ErrorIs(t, res.Rejected[0].Err, transaction.ErrInvalid)
	assert.Equal(t, "Train", res.Rejected[1].Draft.Description)
}

func TestService_ImportNothingNew(t *testing.T) {
	svc, repo := newService(t)

	res, err := svc.Import(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Imported)

	repo.EXPECT().LoadAll().Return([]transaction.Transaction{
		tx(transaction.KindExpense, "Food", "Lunch", "12.5", "2025/10/05"),
	}, nil)

	res, err = svc.Import([]transaction.Draft{
		{Kind: "expense", Category: "Food", Description: "Lunch", Amount: "12.50", Date: "2025/10/05"},
	})
	require.NoError(t, err)
	assert.Empty(t, res.Imported)
	assert.Len(t, res.Duplicates, 1)
}

func TestService_ImportDuplicates(t *testing.T) {
	svc, repo := newService(t)

	dups := []transaction.Transaction{tx(transaction.KindExpense, "Food", "Lunch", "12.5", "2025/10/05")}
	repo.EXPECT().AppendMany(dups).Return(nil)

	assert.NoError(t, svc.ImportDuplicates(dups))
}
