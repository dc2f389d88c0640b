package view

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/gillpay/internal/app"
	"github.com/MrJamesThe3rd/gillpay/internal/importer"
	"github.com/MrJamesThe3rd/gillpay/internal/importer/bankcsv"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateDuplicates
	importStateResult
)

// ImportModel imports a statement file and lets the user pick which
// duplicates to keep.
type ImportModel struct {
	CommonModel
	app *app.App

	state      importState
	filePicker filepicker.Model

	result        *importer.Result
	duplicateList list.Model
	selected      map[int]bool
	kept          int

	status string
	err    error
}

func NewImportModel(a *app.App) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt", ".ofx", ".qfx"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		app:        a,
		filePicker: fp,
		selected:   make(map[int]bool),
	}
}

func (m ImportModel) Title() string { return "Import Statement" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateDuplicates {
		return "Space: toggle | a: all | n: none | Enter: confirm | Esc: skip all"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg)
		m.filePicker.SetHeight(tableHeight(msg.Height))

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateDuplicates {
			return m.updateDuplicates(msg)
		}

		if m.state == importStateResult && msg.Type == tea.KeyEnter {
			return m, Back
		}

	case importResultMsg:
		return m.handleImported(msg)

	case confirmResultMsg:
		m.state = importStateResult
		m.err = msg.err

		if msg.err == nil {
			m.kept = msg.count
		}

		return m, changed
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleImported(msg importResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.state = importStateResult
		m.err = msg.err

		return m, nil
	}

	m.result = msg.result
	m.err = nil
	m.kept = 0

	if len(msg.result.Duplicates) == 0 {
		m.state = importStateResult
		return m, changed
	}

	m.selected = make(map[int]bool)
	m.state = importStateDuplicates

	items := make([]list.Item, len(msg.result.Duplicates))
	for i, tx := range msg.result.Duplicates {
		items[i] = duplicateItem{tx: tx, index: i}
	}

	delegate := duplicateDelegate{selected: m.selected, money: m.app}
	m.duplicateList = list.New(items, delegate, 80, 20)
	m.duplicateList.Title = fmt.Sprintf("%d rows already in the ledger. Keep which?", len(items))
	m.duplicateList.SetShowStatusBar(false)
	m.duplicateList.SetFilteringEnabled(false)
	m.duplicateList.SetShowHelp(false)

	return m, changed
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateDuplicates:
		// Nothing selected is kept.
		m.state = importStateResult
		return m, nil
	case importStateResult:
		m.state = importStateFilePick
		m.result = nil
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	}

	return m, Back
}

func (m ImportModel) updateDuplicates(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		idx := m.duplicateList.Index()
		m.selected[idx] = !m.selected[idx]

		return m, nil
	case "a":
		for i := range m.result.Duplicates {
			m.selected[i] = true
		}

		return m, nil
	case "n":
		clear(m.selected)
		return m, nil
	case "enter":
		return m, m.confirmCmd()
	}

	var cmd tea.Cmd
	m.duplicateList, cmd = m.duplicateList.Update(msg)

	return m, cmd
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return m.viewFilePick()
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateDuplicates:
		return lipgloss.NewStyle().Padding(1).Render(
			m.duplicateList.View() + "\n" + faintStyle.Render(m.ShortHelp()),
		)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewFilePick() string {
	return lipgloss.NewStyle().Padding(1).Render(fmt.Sprintf(
		"Select file to import\n%s\n\n%s",
		faintStyle.Render("Formats: ofx, "+strings.Join(bankcsv.ProfileNames(), ", ")),
		m.filePicker.View(),
	))
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to try again)")
	}

	res := m.result

	var b strings.Builder

	b.WriteString(successStyle.Render(fmt.Sprintf("Imported %d transactions (%s).", len(res.Imported), res.Format)))

	if n := len(res.Duplicates); n > 0 {
		b.WriteString("\n" + warnStyle.Render(fmt.Sprintf("Kept %d of %d duplicates.", m.kept, n)))
	}

	if len(res.Rejected) > 0 {
		b.WriteString("\n\n" + errorStyle.Render(fmt.Sprintf("Rejected %d rows:", len(res.Rejected))))

		for _, r := range res.Rejected {
			b.WriteString(fmt.Sprintf("\n  %s  %s  %s: %s",
				r.Draft.Date, r.Draft.Amount, r.Draft.Description, firstLine(r.Err.Error())))
		}
	}

	b.WriteString("\n\n" + faintStyle.Render("(Enter to finish, Esc to import another)"))

	return style.Render(b.String())
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

type importResultMsg struct {
	result *importer.Result
	err    error
}

type confirmResultMsg struct {
	count int
	err   error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	imports := m.app.Imports

	return func() tea.Msg {
		res, err := imports.ImportFile(path)
		return importResultMsg{result: res, err: err}
	}
}

func (m ImportModel) confirmCmd() tea.Cmd {
	var keep []transaction.Transaction

	for i, tx := range m.result.Duplicates {
		if m.selected[i] {
			keep = append(keep, tx)
		}
	}

	txs := m.app.Transactions

	return func() tea.Msg {
		if len(keep) == 0 {
			return confirmResultMsg{}
		}

		if err := txs.ImportDuplicates(keep); err != nil {
			return confirmResultMsg{err: err}
		}

		return confirmResultMsg{count: len(keep)}
	}
}

type duplicateItem struct {
	tx    transaction.Transaction
	index int
}

func (i duplicateItem) Title() string       { return i.tx.Description }
func (i duplicateItem) Description() string { return "" }
func (i duplicateItem) FilterValue() string { return i.tx.Description }

type duplicateDelegate struct {
	selected map[int]bool
	money    *app.App
}

func (d duplicateDelegate) Height() int                             { return 1 }
func (d duplicateDelegate) Spacing() int                            { return 0 }
func (d duplicateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d duplicateDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(duplicateItem)
	if !ok {
		return
	}

	checkbox := "[ ]"
	if d.selected[item.index] {
		checkbox = "[x]"
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	tx := item.tx

	fmt.Fprintf(w, "%s%s %s  %-8s %12s  %s",
		cursor, checkbox,
		tx.Date,
		tx.Kind,
		d.money.Money(tx.Amount),
		tx.Description,
	)
}
