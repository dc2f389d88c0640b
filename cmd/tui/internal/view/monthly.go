package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gillpay/internal/app"
	"github.com/MrJamesThe3rd/gillpay/internal/report"
)

// MonthlyModel lists income, expense and net per calendar month.
type MonthlyModel struct {
	CommonModel
	app *app.App

	table   table.Model
	months  []report.MonthSummary
	loading bool
	err     error
}

func NewMonthlyModel(a *app.App) MonthlyModel {
	columns := []table.Column{
		{Title: "Month", Width: 16},
		{Title: "Income", Width: 16},
		{Title: "Expense", Width: 16},
		{Title: "Net", Width: 16},
	}

	return MonthlyModel{
		app:     a,
		table:   newTable(columns, 15),
		loading: true,
	}
}

func (m MonthlyModel) Title() string     { return "Monthly Summary" }
func (m MonthlyModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m MonthlyModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m MonthlyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case monthlyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.months = msg.months
		m.refreshTable()

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
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *MonthlyModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.months))
	for _, s := range m.months {
		rows = append(rows, table.Row{
			s.Label,
			m.app.Money(s.Income),
			m.app.Money(s.Expense),
			m.app.SignedMoney(s.Net),
		})
	}

	m.table.SetRows(rows)
}

func (m MonthlyModel) View() string {
	var body string

	switch {
	case m.loading:
		body = "Loading..."
	case m.err != nil:
		body = errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	case len(m.months) == 0:
		body = faintStyle.Render("No data available.")
	default:
		body = tableFrame.Render(m.table.View())
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(titleStyle.Render(m.Title())),
		body,
		faintStyle.Render(m.ShortHelp()),
	))
}

type monthlyLoadedMsg struct {
	months []report.MonthSummary
	err    error
}

func (m MonthlyModel) loadCmd() tea.Cmd {
	reports := m.app.Reports

	return func() tea.Msg {
		months, err := reports.SummaryByMonth()
		return monthlyLoadedMsg{months: months, err: err}
	}
}
