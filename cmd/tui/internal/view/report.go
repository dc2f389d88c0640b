package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gillpay/internal/app"
	"github.com/MrJamesThe3rd/gillpay/internal/report"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

type reportKind int

const (
	reportExpense reportKind = iota
	reportIncome
	reportAll
)

func (k reportKind) String() string {
	switch k {
	case reportIncome:
		return "Income"
	case reportAll:
		return "All"
	}

	return "Expenses"
}

type reportState int

const (
	reportStatePick reportState = iota
	reportStateTable
)

// ReportModel shows category totals for a timeframe picked up front.
type ReportModel struct {
	CommonModel
	app *app.App

	state  reportState
	picker TimeframePicker
	kind   reportKind
	rng    transaction.DateRange
	label  string

	table table.Model
	rows  []report.TypedCategoryTotal
	err   error
}

func NewReportModel(a *app.App) ReportModel {
	return ReportModel{
		app:    a,
		picker: NewTimeframePicker(TimeframeThisMonth),
		table:  newTable(reportColumns(reportExpense), 15),
	}
}

func reportColumns(k reportKind) []table.Column {
	if k == reportAll {
		return []table.Column{
			{Title: "Type", Width: 9},
			{Title: "Category", Width: 28},
			{Title: "Total", Width: 16},
		}
	}

	return []table.Column{
		{Title: "Category", Width: 28},
		{Title: "Total", Width: 16},
		{Title: "Share", Width: 8},
	}
}

func (m ReportModel) Title() string { return "Category Report" }
func (m ReportModel) ShortHelp() string {
	if m.state == reportStatePick {
		return "Enter: select | Esc: back"
	}

	return "Tab: expenses/income/all | p: change timeframe | Esc: back"
}

func (m ReportModel) Init() tea.Cmd {
	return nil
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg)
		m.table.SetHeight(tableHeight(msg.Height))

		return m, nil

	case TimeframeSelectedMsg:
		m.rng = msg.Range
		m.label = msg.Label
		m.state = reportStateTable

		return m, m.loadCmd()

	case reportLoadedMsg:
		m.err = msg.err
		m.rows = msg.rows
		m.refreshTable()

		return m, nil

	case tea.KeyMsg:
		if m.state == reportStatePick {
			if msg.Type == tea.KeyEsc && m.picker.IsSelecting() {
				return m, Back
			}

			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)

			return m, cmd
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "p":
			m.picker.Reset()
			m.state = reportStatePick

			return m, nil
		case "tab":
			m.kind = (m.kind + 1) % 3
			return m, m.loadCmd()
		}
	}

	if m.state == reportStatePick {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *ReportModel) refreshTable() {
	var total decimal.Decimal
	for _, r := range m.rows {
		total = total.Add(r.Total)
	}

	rows := make([]table.Row, 0, len(m.rows))

	for _, r := range m.rows {
		if m.kind == reportAll {
			rows = append(rows, table.Row{string(r.Kind), r.Category, m.app.Money(r.Total)})
			continue
		}

		share := "-"
		if total.IsPositive() {
			share = r.Total.Div(total).Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
		}

		rows = append(rows, table.Row{r.Category, m.app.Money(r.Total), share})
	}

	m.table.SetColumns(reportColumns(m.kind))
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ReportModel) View() string {
	if m.state == reportStatePick {
		return lipgloss.NewStyle().Padding(2).Render(titleStyle.Render(m.Title()) + "\n\n" + m.picker.View())
	}

	header := fmt.Sprintf("%s | [tab] Report: %s", titleStyle.Render(m.label), activeStyle(m.kind.String()))

	var body string

	switch {
	case m.err != nil:
		body = errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	case len(m.rows) == 0:
		body = faintStyle.Render("No data available for the selected period.")
	default:
		body = tableFrame.Render(m.table.View())
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		body,
		faintStyle.Render(m.ShortHelp()),
	))
}

type reportLoadedMsg struct {
	rows []report.TypedCategoryTotal
	err  error
}

func (m ReportModel) loadCmd() tea.Cmd {
	kind, rng := m.kind, m.rng
	reports := m.app.Reports

	return func() tea.Msg {
		if kind == reportAll {
			rows, err := reports.AllByCategory(rng)
			return reportLoadedMsg{rows: rows, err: err}
		}

		var (
			totals []report.CategoryTotal
			err    error
			txKind = transaction.KindExpense
		)

		if kind == reportIncome {
			txKind = transaction.KindIncome
			totals, err = reports.IncomeByCategory(rng)
		} else {
			totals, err = reports.ExpenseByCategory(rng)
		}

		if err != nil {
			return reportLoadedMsg{err: err}
		}

		rows := make([]report.TypedCategoryTotal, 0, len(totals))
		for _, t := range totals {
			rows = append(rows, report.TypedCategoryTotal{Kind: txKind, Category: t.Category, Total: t.Total})
		}

		return reportLoadedMsg{rows: rows}
	}
}
