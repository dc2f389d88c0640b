package view

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

func TestTimeframe_Range(t *testing.T) {
	// A Wednesday.
	now := time.Date(2025, 10, 15, 18, 30, 0, 0, time.Local)

	type testCase struct {
		tf        Timeframe
		wantStart string
		wantEnd   string
	}

	tests := []testCase{
		{tf: TimeframeThisWeek, wantStart: "2025/10/13", wantEnd: "2025/10/15"},
		{tf: TimeframeLastWeek, wantStart: "2025/10/06", wantEnd: "2025/10/12"},
		{tf: TimeframeThisMonth, wantStart: "2025/10/01", wantEnd: "2025/10/15"},
		{tf: TimeframeLastMonth, wantStart: "2025/09/01", wantEnd: "2025/09/30"},
		{tf: TimeframeThisYear, wantStart: "2025/01/01", wantEnd: "2025/10/15"},
	}

	for _, tt := range tests {
		t.Run(tt.tf.String(), func(t *testing.T) {
			r := tt.tf.Range(now)
			require.NotNil(t, r.Start)
			require.NotNil(t, r.End)
			assert.Equal(t, tt.wantStart, transaction.FormatDate(*r.Start))
			assert.Equal(t, tt.wantEnd, transaction.FormatDate(*r.End))
		})
	}

	assert.True(t, TimeframeAll.Range(now).IsZero())
}

func TestTimeframe_RangeOnSunday(t *testing.T) {
	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)

	r := TimeframeThisWeek.Range(sunday)
	assert.Equal(t, "2025/10/13", transaction.FormatDate(*r.Start))

	r = TimeframeLastMonth.Range(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025/12/01", transaction.FormatDate(*r.Start))
	assert.Equal(t, "2025/12/31", transaction.FormatDate(*r.End))
}

func TestCustomRange(t *testing.T) {
	r, err := customRange("2025/10/01", "10/31/2025")
	require.NoError(t, err)
	assert.Equal(t, "2025/10/31", transaction.FormatDate(*r.End))

	_, err = customRange("yesterday", "2025/10/31")
	assert.EqualError(t, err, "invalid start date (YYYY/MM/DD)")

	_, err = customRange("2025/10/31", "2025/10/01")
	assert.EqualError(t, err, "end date is before start date")
}

func TestTimeframePicker_Select(t *testing.T) {
	p := NewTimeframePicker(TimeframeThisMonth)
	p.now = func() time.Time { return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC) }

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(TimeframeSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "Last Month", msg.Label)
	assert.Equal(t, "2025/09/01", transaction.FormatDate(*msg.Range.Start))
	assert.True(t, p.IsSelecting())
}
