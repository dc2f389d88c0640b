package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gillpay/internal/app"
	"github.com/MrJamesThe3rd/gillpay/internal/config"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

func TestParseRange(t *testing.T) {
	type testCase struct {
		name      string
		from      string
		to        string
		wantStart *time.Time
		wantEnd   *time.Time
		wantErr   string
	}

	oct1 := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	oct31 := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)

	tests := []testCase{
		{name: "Open"},
		{name: "Both", from: "2025/10/01", to: "10/31/2025", wantStart: &oct1, wantEnd: &oct31},
		{name: "FromOnly", from: "2025-10-01", wantStart: &oct1},
		{name: "BadFrom", from: "first of october", wantErr: "invalid --from"},
		{name: "Reversed", from: "2025/10/31", to: "2025/10/01", wantErr: "before"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRange(tt.from, tt.to)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.Start)
			assert.Equal(t, tt.wantEnd, got.End)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := parseKind("Income")
	require.NoError(t, err)
	assert.Equal(t, transaction.KindIncome, k)

	_, err = parseKind("transfer")
	assert.Error(t, err)
}

func TestBar(t *testing.T) {
	largest := decimal.NewFromInt(100)

	assert.Equal(t, strings.Repeat("█", 10), bar(decimal.NewFromInt(100), largest, 10))
	assert.Equal(t, strings.Repeat("█", 5), bar(decimal.NewFromInt(-50), largest, 10))
	assert.Equal(t, "█", bar(decimal.RequireFromString("0.01"), largest, 10))
	assert.Empty(t, bar(decimal.Zero, largest, 10))
	assert.Empty(t, bar(decimal.NewFromInt(5), decimal.Zero, 10))
}

func TestNewApp_EndToEnd(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Currency = "USD"
	cfg.Data.Dir = filepath.Join(t.TempDir(), "data")
	cfg.Data.LedgerFile = "ledger.csv"
	cfg.Data.CategoriesFile = "categories.csv"

	a, err := app.New(cfg)
	require.NoError(t, err)

	svc = a
	t.Cleanup(func() { svc = nil })

	var out bytes.Buffer

	root := addCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--type", "expense", "--category", "groceries", "--description", "Weekly shop", "--amount", "82.4", "--date", "10/05/2025"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Saved expense")

	txs, err := a.Transactions.List(transaction.ListFilter{})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Groceries", txs[0].Category)
	assert.Equal(t, "2025/10/05", txs[0].Date)

	out.Reset()

	withLabel := addCmd()
	withLabel.SetOut(&out)
	withLabel.SetArgs([]string{"--type", "expense", "--label", "Gifts", "--description", "Birthday present", "--amount", "25", "--date", "2025/10/06"})
	require.NoError(t, withLabel.Execute())

	txs, err = a.Transactions.List(transaction.ListFilter{})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "Other", txs[1].Category)
	assert.Equal(t, "Birthday present [Gifts]", txs[1].Description)

	wrongCategory := addCmd()
	wrongCategory.SetOut(&out)
	wrongCategory.SetErr(&out)
	wrongCategory.SetArgs([]string{"--type", "expense", "--category", "Groceries", "--label", "Gifts", "--description", "x", "--amount", "1"})
	assert.Error(t, wrongCategory.Execute())

	out.Reset()

	sum := summaryCmd()
	sum.SetOut(&out)
	sum.SetArgs([]string{})
	require.NoError(t, sum.Execute())
	assert.Contains(t, out.String(), "$107.40")
}
