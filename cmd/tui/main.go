package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/gillpay/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/gillpay/internal/app"
	"github.com/MrJamesThe3rd/gillpay/internal/config"
	"github.com/MrJamesThe3rd/gillpay/internal/logging"
	"github.com/MrJamesThe3rd/gillpay/internal/report"
)

type model struct {
	app *app.App

	currentView View
	summary     *report.Summary
	summaryErr  error
	width       int
	height      int

	addView      view.AddModel
	listView     view.ListModel
	reportView   view.ReportModel
	monthlyView  view.MonthlyModel
	categoryView view.CategoryModel
	importView   view.ImportModel
}

type View int

const (
	ViewMenu View = iota
	ViewAdd
	ViewList
	ViewReport
	ViewMonthly
	ViewCategories
	ViewImport
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	incomeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	expenseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle      = lipgloss.NewStyle().Faint(true)
)

func initialModel(a *app.App) model {
	return model{
		app:         a,
		currentView: ViewMenu,
	}
}

type summaryMsg struct {
	summary report.Summary
	err     error
}

func (m model) loadSummary() tea.Cmd {
	reports := m.app.Reports

	return func() tea.Msg {
		s, err := reports.Summary()
		return summaryMsg{summary: s, err: err}
	}
}

func (m model) Init() tea.Cmd {
	return m.loadSummary()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case summaryMsg:
		m.summary, m.summaryErr = &msg.summary, msg.err
		return m, nil
	case view.ChangedMsg:
		return m, m.loadSummary()
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, m.loadSummary()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			return m.updateMenu(msg)
		}
	}

	return m.updateCurrent(msg)
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		m.addView = view.NewAddModel(m.app)
		cmd = m.addView.Init()
		m.currentView = ViewAdd
	case "2":
		m.listView = view.NewListModel(m.app)
		cmd = m.listView.Init()
		m.currentView = ViewList
	case "3":
		m.reportView = view.NewReportModel(m.app)
		cmd = m.reportView.Init()
		m.currentView = ViewReport
	case "4":
		m.monthlyView = view.NewMonthlyModel(m.app)
		cmd = m.monthlyView.Init()
		m.currentView = ViewMonthly
	case "5":
		m.categoryView = view.NewCategoryModel(m.app)
		cmd = m.categoryView.Init()
		m.currentView = ViewCategories
	case "6":
		m.importView = view.NewImportModel(m.app)
		cmd = m.importView.Init()
		m.currentView = ViewImport
	default:
		return m, nil
	}

	// Size the new view for the current window.
	size := func() tea.Msg { return tea.WindowSizeMsg{Width: m.width, Height: m.height} }
	if m.width == 0 {
		return m, cmd
	}

	return m, tea.Batch(cmd, size)
}

func (m model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		newModel tea.Model
		cmd      tea.Cmd
	)

	switch m.currentView {
	case ViewAdd:
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddModel)
	case ViewList:
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewReport:
		newModel, cmd = m.reportView.Update(msg)
		m.reportView = newModel.(view.ReportModel)
	case ViewMonthly:
		newModel, cmd = m.monthlyView.Update(msg)
		m.monthlyView = newModel.(view.MonthlyModel)
	case ViewCategories:
		newModel, cmd = m.categoryView.Update(msg)
		m.categoryView = newModel.(view.CategoryModel)
	case ViewImport:
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) summaryLine() string {
	switch {
	case m.summaryErr != nil:
		return expenseStyle.Render(fmt.Sprintf("Could not read ledger: %v", m.summaryErr))
	case m.summary == nil:
		return hintStyle.Render("Loading summary...")
	}

	s := m.summary

	return fmt.Sprintf("Income %s   Expense %s   Net %s",
		incomeStyle.Render(m.app.Money(s.Income)),
		expenseStyle.Render(m.app.Money(s.Expense)),
		menuTitleStyle.Render(m.app.SignedMoney(s.Net)),
	)
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		items := []string{
			"1. Add Transaction",
			"2. Transactions",
			"3. Category Report",
			"4. Monthly Summary",
			"5. Categories",
			"6. Import Statement",
		}

		return lipgloss.NewStyle().Padding(2).Render(
			menuTitleStyle.Render(m.app.Config.App.Name) + "\n" +
				m.summaryLine() + "\n\n" +
				strings.Join(items, "\n") + "\n\n" +
				hintStyle.Render("q. Quit"),
		)
	case ViewAdd:
		return m.addView.View()
	case ViewList:
		return m.listView.View()
	case ViewReport:
		return m.reportView.View()
	case ViewMonthly:
		return m.monthlyView.View()
	case ViewCategories:
		return m.categoryView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

// setupLogging sends logs to a file, the terminal belongs to the UI.
func setupLogging(cfg *config.Config) (func(), error) {
	if dir := filepath.Dir(cfg.Log.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, f)
	if err != nil {
		f.Close()
		return nil, err
	}

	slog.SetDefault(logger)

	return func() { f.Close() }, nil
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	a, err := app.New(cfg)
	if err != nil {
		return err
	}

	slog.Info("starting tui", "ledger", cfg.LedgerPath())

	p := tea.NewProgram(initialModel(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("gillpay tui exited", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
