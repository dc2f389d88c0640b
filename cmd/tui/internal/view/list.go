package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gillpay/internal/app"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

var (
	kindFilters = []struct {
		label string
		kind  *transaction.Kind
	}{
		{"All", nil},
		{"Income", new(transaction.KindIncome)},
		{"Expense", new(transaction.KindExpense)},
	}

	dateFilters = []Timeframe{TimeframeAll, TimeframeThisMonth, TimeframeLastMonth, TimeframeThisYear}
)

// ListModel shows ledger rows with kind and date filters that cycle on a key
// press.
type ListModel struct {
	CommonModel
	app *app.App

	table table.Model
	txs   []transaction.Transaction

	kindFilterIdx int
	dateFilterIdx int

	filter  transaction.ListFilter
	now     func() time.Time
	loading bool
	err     error
}

func NewListModel(a *app.App) ListModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 9},
		{Title: "Category", Width: 20},
		{Title: "Amount", Width: 14},
		{Title: "Description", Width: 40},
	}

	return ListModel{
		app:     a,
		table:   newTable(columns, 15),
		now:     time.Now,
		loading: true,
	}
}

func (m ListModel) Title() string { return "Transactions" }
func (m ListModel) ShortHelp() string {
	return "Esc: back | t: type filter | d: date filter | r: refresh"
}

func (m ListModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.txs = msg.txs
			m.refreshTable()
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.setSize(msg)
		m.table.SetHeight(tableHeight(msg.Height))

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "t":
			m.kindFilterIdx = (m.kindFilterIdx + 1) % len(kindFilters)
			m.applyFilter()

			return m, m.loadTxsCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % len(dateFilters)
			m.applyFilter()

			return m, m.loadTxsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf(
		"Filter: [t] Type: %s | [d] Date: %s | %d rows",
		activeStyle(kindFilters[m.kindFilterIdx].label),
		activeStyle(dateFilters[m.dateFilterIdx].String()),
		len(m.txs),
	)

	body := tableFrame.Render(m.table.View())
	if len(m.txs) == 0 {
		body = faintStyle.Render("No transactions match the current filter.")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		body,
		faintStyle.Render(m.ShortHelp()),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ListModel) applyFilter() {
	m.filter.Kind = kindFilters[m.kindFilterIdx].kind
	m.filter.Range = dateFilters[m.dateFilterIdx].Range(m.now())
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			tx.Date,
			string(tx.Kind),
			tx.Category,
			m.app.Money(tx.Amount),
			tx.Description,
		})
	}

	m.table.SetRows(rows)
}

type loadListMsg struct {
	txs []transaction.Transaction
	err error
}

func (m ListModel) loadTxsCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		txs, err := m.app.Transactions.List(filter)
		return loadListMsg{txs: txs, err: err}
	}
}
